// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the board geometry and goal.
type BoardConfig struct {
	Size       int `yaml:"size"`
	WinTile    int `yaml:"win_tile"`
	StartTiles int `yaml:"start_tiles"` // tiles on the board before the first move
}

// SpawnConfig defines how new tiles are drawn.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // 0.0 = always 2, 1.0 = always 4
}

var (
	ErrInvalidSize        = errors.New("config: board size must be at least 2")
	ErrInvalidWinTile     = errors.New("config: win tile must be a power of two above 2")
	ErrInvalidStartTiles  = errors.New("config: start tiles must fit on the board")
	ErrInvalidProbability = errors.New("config: four probability must be within [0, 1]")
)

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidSize, c.Board.Size)
	}
	if w := c.Board.WinTile; w <= 2 || w&(w-1) != 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidWinTile, w)
	}
	if s := c.Board.StartTiles; s < 1 || s > c.Board.Size*c.Board.Size {
		return fmt.Errorf("%w, got %d", ErrInvalidStartTiles, s)
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w, got %g", ErrInvalidProbability, p)
	}
	return nil
}

// Rules converts the board section into game rules.
func (c T2048Config) Rules() t2048.Rules {
	return t2048.Rules{
		Size:       c.Board.Size,
		WinTile:    c.Board.WinTile,
		StartTiles: c.Board.StartTiles,
	}
}
