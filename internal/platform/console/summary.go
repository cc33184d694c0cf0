package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(tileColor)

// WriteSummary prints the final board and totals of a session.
func WriteSummary(w io.Writer, s *t2048.Session, stats Stats) error {
	snap := s.Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(s.Board.String())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "score %d  best %d  max tile %d\n", snap.Score, snap.MaxScore, snap.MaxTile)
	fmt.Fprintf(&b, "games %d  finished %d  won %d  moves %d  merges %d\n",
		snap.Games, stats.Games, stats.Wins, snap.Moves, stats.Merged)

	_, err := io.WriteString(w, b.String())
	return err
}
