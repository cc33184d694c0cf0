package console

import (
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Prompt wraps in so that the board and a prompt are written to w before
// each action is read. It is meant for a player at a terminal.
func Prompt(in core.Input, w io.Writer, s *t2048.Session) core.Input {
	return core.InputFunc(func(ctx context.Context) (core.Action, error) {
		prompt := "move> "
		if s.Over() {
			prompt = "game over, new or quit> "
			if s.Won {
				prompt = "you won! new or quit> "
			}
		}
		fmt.Fprintf(w, "\n%s\n\nscore %d  best %d\n%s", s.Board, s.Score.Current, s.Score.Max, prompt)
		return in.Next(ctx)
	})
}
