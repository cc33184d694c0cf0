package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed    int64 // RNG seed for deterministic tile spawns, 0 means time based
	Verbose bool  // Record every move and spawned tile in the log
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0,
	}
}

// ResolvedSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
