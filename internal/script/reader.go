package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// ErrTilesExhausted is returned by NextTile when the input ends before
// supplying another tile.
var ErrTilesExhausted = errors.New("script: no more tiles")

// Reader reads actions, and optionally tiles, from text. It serves as both
// the game's Input and its TileSource; lines of the kind not being asked
// for are queued until they are. Reader is not safe for concurrent use.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	eof     bool

	tiles     bool
	onInvalid func(line int, err error)

	actions []core.Action
	pending []t2048.Tile
}

// Option configures a Reader.
type Option func(*Reader)

// WithTiles accepts "tile" lines and makes the Reader usable as a TileSource.
// Without it, a tile line is an error.
func WithTiles() Option {
	return func(r *Reader) {
		r.tiles = true
	}
}

// SkipInvalid reports unparseable lines to fn and keeps reading instead of
// failing. Read errors still end the input.
func SkipInvalid(fn func(line int, err error)) Option {
	return func(r *Reader) {
		r.onInvalid = fn
	}
}

// NewReader creates a Reader over src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{scanner: bufio.NewScanner(src)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next action. At end of input it returns core.ErrInputClosed.
// Reads are not interruptible; ctx is checked between lines.
func (r *Reader) Next(ctx context.Context) (core.Action, error) {
	for len(r.actions) == 0 {
		if err := ctx.Err(); err != nil {
			return core.ActionNone, err
		}
		ok, err := r.readItem()
		if err != nil {
			return core.ActionNone, err
		}
		if !ok {
			return core.ActionNone, core.ErrInputClosed
		}
	}

	a := r.actions[0]
	r.actions = r.actions[1:]
	return a, nil
}

// NextTile returns the next scripted tile.
func (r *Reader) NextTile() (t2048.Tile, error) {
	if !r.tiles {
		return t2048.Tile{}, errors.New("script: reader was not created with tiles")
	}
	for len(r.pending) == 0 {
		ok, err := r.readItem()
		if err != nil {
			return t2048.Tile{}, err
		}
		if !ok {
			return t2048.Tile{}, fmt.Errorf("%w after line %d", ErrTilesExhausted, r.line)
		}
	}

	t := r.pending[0]
	r.pending = r.pending[1:]
	return t, nil
}

// readItem reads lines until one yields an action or a tile and queues it.
// It returns false at end of input.
func (r *Reader) readItem() (bool, error) {
	for !r.eof {
		if !r.scanner.Scan() {
			r.eof = true
			if err := r.scanner.Err(); err != nil {
				return false, fmt.Errorf("script: read line %d: %w", r.line+1, err)
			}
			return false, nil
		}
		r.line++

		item, err := ParseLine(r.scanner.Text())
		if err == nil && item.Kind == KindTile && !r.tiles {
			err = fmt.Errorf("%w: scripted tiles are not enabled", ErrBadTile)
		}
		if err != nil {
			if r.onInvalid != nil {
				r.onInvalid(r.line, err)
				continue
			}
			return false, fmt.Errorf("line %d: %w", r.line, err)
		}

		switch item.Kind {
		case KindAction:
			r.actions = append(r.actions, item.Action)
			return true, nil
		case KindTile:
			r.pending = append(r.pending, item.Tile)
			return true, nil
		}
	}
	return false, nil
}

// Feed copies actions from src into q until src ends or ctx is done.
// It does not close q; the caller does once it has recorded the result.
func Feed(ctx context.Context, src core.Input, q *core.QueueInput) error {
	for {
		a, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, core.ErrInputClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !q.Push(ctx, a) {
			return nil
		}
	}
}
