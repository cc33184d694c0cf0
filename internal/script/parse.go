// Package script drives a 2048 session from line-oriented text: a file,
// a pipe, or a terminal. Each line names one action or one scripted tile.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Kind classifies a parsed line.
type Kind int

const (
	KindBlank  Kind = iota // empty line or comment
	KindAction             // a player action
	KindTile               // a scripted tile placement
)

// Item is one parsed script line.
type Item struct {
	Kind   Kind
	Action core.Action
	Tile   t2048.Tile
}

var (
	ErrUnknownCommand = errors.New("script: unknown command")
	ErrBadTile        = errors.New("script: bad tile")
)

var actionWords = map[string]core.Action{
	"north": core.ActionNorth, "up": core.ActionNorth, "n": core.ActionNorth, "u": core.ActionNorth, "↑": core.ActionNorth,
	"east": core.ActionEast, "right": core.ActionEast, "e": core.ActionEast, "r": core.ActionEast, "→": core.ActionEast,
	"south": core.ActionSouth, "down": core.ActionSouth, "s": core.ActionSouth, "d": core.ActionSouth, "↓": core.ActionSouth,
	"west": core.ActionWest, "left": core.ActionWest, "w": core.ActionWest, "l": core.ActionWest, "←": core.ActionWest,
	"new": core.ActionNewGame, "new game": core.ActionNewGame,
	"quit": core.ActionQuit, "q": core.ActionQuit,
}

// ParseAction maps a command word to its action. Matching ignores case
// and surrounding space.
func ParseAction(word string) (core.Action, bool) {
	a, ok := actionWords[strings.Join(strings.Fields(strings.ToLower(word)), " ")]
	return a, ok
}

// ParseLine parses one line. Text after '#' is a comment.
func ParseLine(line string) (Item, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Item{Kind: KindBlank}, nil
	}

	if fields[0] == "tile" {
		t, err := parseTile(fields[1:])
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: KindTile, Tile: t}, nil
	}

	a, ok := ParseAction(strings.Join(fields, " "))
	if !ok {
		return Item{}, fmt.Errorf("%w %q", ErrUnknownCommand, strings.TrimSpace(line))
	}
	return Item{Kind: KindAction, Action: a}, nil
}

// parseTile reads "<value> <row> <col>".
func parseTile(args []string) (t2048.Tile, error) {
	if len(args) != 3 {
		return t2048.Tile{}, fmt.Errorf("%w: want \"tile <value> <row> <col>\", got %d arguments", ErrBadTile, len(args))
	}

	var nums [3]int
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return t2048.Tile{}, fmt.Errorf("%w: %q is not a number", ErrBadTile, s)
		}
		nums[i] = n
	}
	if nums[0] != 2 && nums[0] != 4 {
		return t2048.Tile{}, fmt.Errorf("%w: value %d is not 2 or 4", ErrBadTile, nums[0])
	}
	return t2048.Tile{Value: nums[0], Row: nums[1], Col: nums[2]}, nil
}
