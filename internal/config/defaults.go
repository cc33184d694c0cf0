package config

import (
	_ "embed"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:       t2048.BoardSize,
			WinTile:    t2048.WinTile,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
