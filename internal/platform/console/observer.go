// Package console reports a running 2048 session through a structured
// charmbracelet/log logger. It never draws the board interactively; boards
// are written as plain text when a game ends.
package console

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Key and value colours for event fields.
var (
	tileColor  = lipgloss.Color("#EDC22E")
	scoreColor = lipgloss.Color("#8BE9FD")
	winColor   = lipgloss.Color("#50FA7B")
	lossColor  = lipgloss.Color("#FF5555")
)

// NewLogger creates the session logger. An empty level keeps info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	})
	logger.SetStyles(Styles())
	return logger, nil
}

// Styles returns the log styles used for game events.
func Styles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Keys["value"] = lipgloss.NewStyle().Foreground(tileColor)
	styles.Keys["tile"] = lipgloss.NewStyle().Foreground(tileColor)
	styles.Keys["score"] = lipgloss.NewStyle().Foreground(scoreColor)
	styles.Keys["best"] = lipgloss.NewStyle().Foreground(scoreColor)
	styles.Values["score"] = lipgloss.NewStyle().Bold(true)
	styles.Values["best"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["won"] = lipgloss.NewStyle().Foreground(winColor)
	styles.Values["won"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lossColor)
	return styles
}

// Stats counts what the observer has seen.
type Stats struct {
	Placed int
	Moved  int // moves that covered at least one cell
	Merged int
	Games  int // finished games
	Wins   int
}

// Observer logs game events. Placements and moves go to debug, merges,
// score changes and game ends to info.
type Observer struct {
	logger *log.Logger
	stats  Stats
}

// NewObserver creates an observer writing to logger.
func NewObserver(logger *log.Logger) *Observer {
	return &Observer{logger: logger}
}

// Stats returns the counts so far.
func (o *Observer) Stats() Stats {
	return o.stats
}

// Observe implements t2048.Observer.
func (o *Observer) Observe(e t2048.Event) {
	switch e := e.(type) {
	case t2048.TilePlaced:
		o.stats.Placed++
		o.logger.Debug("tile placed", "value", e.Value, "at", e.At)
	case t2048.TileMoved:
		// Tiles already against the edge report zero-distance moves.
		if e.Distance() == 0 {
			return
		}
		o.stats.Moved++
		o.logger.Debug("tile moved", "value", e.Value, "from", e.From, "to", e.To)
	case t2048.TileMerged:
		o.stats.Merged++
		o.logger.Info("tiles merged", "tile", e.NewValue, "from", e.From, "to", e.To)
	case t2048.ScoreUpdated:
		o.logger.Info("score", "score", e.Current, "best", e.Max)
	case t2048.GameOver:
		o.stats.Games++
		if e.Won {
			o.stats.Wins++
		}
		o.logger.Info("game over", "won", e.Won)
	}
}

// LogInput wraps in so each action read is logged at debug level.
func LogInput(in core.Input, logger *log.Logger) core.Input {
	return core.InputFunc(func(ctx context.Context) (core.Action, error) {
		a, err := in.Next(ctx)
		if err == nil {
			logger.Debug("action", "action", a)
		}
		return a, err
	})
}

// LogTiles wraps src so each tile proposal is logged at debug level.
func LogTiles(src t2048.TileSource, logger *log.Logger) t2048.TileSource {
	return t2048.TileSourceFunc(func() (t2048.Tile, error) {
		t, err := src.NextTile()
		if err == nil {
			logger.Debug("tile proposed", "value", t.Value, "row", t.Row, "col", t.Col)
		}
		return t, err
	})
}
