// Package t2048 implements the 2048 sliding-tile game: the board, the tilt
// engine and the game loop that drives spawns, moves and terminal checks.
package t2048

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	// BoardSize is the default board dimension.
	BoardSize = 4
	// WinTile is the default tile value that wins the game.
	WinTile = 2048
)

// Rules fixes the geometry and goal of a game.
type Rules struct {
	Size       int // board dimension
	WinTile    int // reaching this tile ends the game as a win
	StartTiles int // tiles on the board before the first move
}

// DefaultRules returns the classic 4x4, 2048, two-tile rules.
func DefaultRules() Rules {
	return Rules{
		Size:       BoardSize,
		WinTile:    WinTile,
		StartTiles: 2,
	}
}

// Game runs the 2048 loop: spawn, check for the end, wait for a move, apply it.
type Game struct {
	rules    Rules
	source   TileSource
	observer Observer
}

// New creates a game. A nil observer discards events.
func New(rules Rules, source TileSource, observer Observer) *Game {
	return &Game{
		rules:    rules,
		source:   source,
		observer: observer,
	}
}

func (g *Game) emit(e Event) {
	if g.observer != nil {
		g.observer.Observe(e)
	}
}

// NewSession creates a session and starts its first game.
func (g *Game) NewSession() (*Session, error) {
	s := &Session{Board: NewBoard(g.rules.Size)}
	if err := g.Restart(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart clears the board and the current score and places the opening
// tiles, leaving the last one to the spawning phase. The session best is kept.
func (g *Game) Restart(s *Session) error {
	s.Board.Clear()
	s.Score.Current = 0
	s.Won = false
	s.Moves = 0
	s.Games++
	g.emit(ScoreUpdated{Current: 0, Max: s.Score.Max})

	for range g.rules.StartTiles - 1 {
		if err := g.spawn(s); err != nil {
			return err
		}
	}
	s.Phase = PhaseSpawning
	return nil
}

// Advance runs the phases that need no player input, stopping when the
// session waits for a move, has ended its game, or has quit.
func (g *Game) Advance(s *Session) error {
	for {
		switch s.Phase {
		case PhaseSpawning:
			if err := g.spawn(s); err != nil {
				return err
			}
			s.Phase = PhaseCheckTerminal
		case PhaseCheckTerminal:
			g.checkTerminal(s)
		case PhaseApplying:
			if err := g.apply(s); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Handle reacts to one player action and advances the session.
// A move that would not change the board is ignored without side effects,
// as is any move once the game is over.
func (g *Game) Handle(s *Session, a core.Action) error {
	if s.Phase == PhaseQuit {
		return nil
	}

	switch a {
	case core.ActionQuit:
		s.Phase = PhaseQuit
		return nil
	case core.ActionNewGame:
		if err := g.Restart(s); err != nil {
			return err
		}
		return g.Advance(s)
	}

	if s.Phase != PhaseAwaitingMove {
		return nil
	}
	dir, ok := directionOf(a)
	if !ok {
		return nil
	}

	preview, err := Tilt(s.Board.Clone(), dir)
	if err != nil {
		return err
	}
	if !preview.Changed {
		return nil
	}

	s.pending = dir
	s.Phase = PhaseApplying
	return g.Advance(s)
}

// Run plays the session until the player quits. The only blocking call is
// in.Next; a cancelled ctx or closed input is treated as quitting.
func (g *Game) Run(ctx context.Context, s *Session, in core.Input) error {
	if err := g.Advance(s); err != nil {
		return err
	}

	for s.Phase != PhaseQuit {
		a, err := in.Next(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, core.ErrInputClosed) {
				s.Phase = PhaseQuit
				return nil
			}
			return fmt.Errorf("t2048: read input: %w", err)
		}
		if err := g.Handle(s, a); err != nil {
			return err
		}
	}
	return nil
}

// spawn places one tile from the source in an empty cell.
// It does nothing when the board is full.
func (g *Game) spawn(s *Session) error {
	if s.Board.IsFull() {
		return nil
	}

	for {
		t, err := g.source.NextTile()
		if err != nil {
			return fmt.Errorf("t2048: next tile: %w", err)
		}
		// Out-of-range proposals read as OutOfRange, which is not empty either.
		if s.Board.Get(t.Row, t.Col) != 0 {
			continue
		}
		if t.Value <= 0 {
			return fmt.Errorf("t2048: tile value %d at %v is not positive", t.Value, Pos{t.Row, t.Col})
		}
		if err := s.Board.Set(t.Row, t.Col, t.Value); err != nil {
			return err
		}
		g.emit(TilePlaced{Value: t.Value, At: Pos{t.Row, t.Col}})
		return nil
	}
}

// checkTerminal moves the session to PhaseTerminal or PhaseAwaitingMove.
func (g *Game) checkTerminal(s *Session) {
	over, won := Terminal(s.Board, g.rules.WinTile)
	if !over {
		s.Phase = PhaseAwaitingMove
		return
	}

	s.Phase = PhaseTerminal
	s.Won = won
	if s.Score.Current > s.Score.Max {
		s.Score.Max = s.Score.Current
		g.emit(ScoreUpdated{Current: s.Score.Current, Max: s.Score.Max})
	}
	g.emit(GameOver{Won: won})
}

// apply performs the pending move on the live board.
func (g *Game) apply(s *Session) error {
	out, err := Tilt(s.Board, s.pending)
	if err != nil {
		return err
	}

	s.Score.Current += out.ScoreDelta
	for _, e := range out.Events {
		g.emit(e)
	}
	if out.ScoreDelta > 0 {
		g.emit(ScoreUpdated{Current: s.Score.Current, Max: s.Score.Max})
	}
	s.Moves++
	s.Phase = PhaseSpawning
	return nil
}

// directionOf maps a move action to its tilt direction.
// Move actions are declared in the same order as the directions.
func directionOf(a core.Action) (Direction, bool) {
	if !a.IsMove() {
		return 0, false
	}
	return DirNorth + Direction(a-core.ActionNorth), true
}
