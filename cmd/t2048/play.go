package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/console"
	"github.com/vovakirdan/t2048/internal/script"
)

var (
	flagDifficulty    string
	flagScript        string
	flagScriptedTiles bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play 2048, one command per line, from the terminal, stdin or a script.

Commands:
  up / north / n / ↑      - Tilt toward the top row
  right / east / e / →    - Tilt toward the right column
  down / south / s / ↓    - Tilt toward the bottom row
  left / west / w / ←     - Tilt toward the left column
  new                     - Abandon the game and start over
  quit / q                - End the session (also end of input, Ctrl+C)
  tile <value> <row> <col> - Place the next tile (--scripted-tiles only)

Lines starting with # are comments. Unknown commands typed on stdin are
reported and skipped; in a --script file they end the session.

With --scripted-tiles moves and tiles share one stream, so Ctrl+C takes
effect once the current line is read (press Enter).

Difficulty options:
  easy   - Fewer 4s spawn
  normal - Classic odds, one 4 in ten
  hard   - More 4s spawn

Examples:
  t2048 play
  t2048 play --difficulty easy
  t2048 play --seed 7 --script moves.txt
  t2048 play --scripted-tiles < game.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagScript, "script", "", "Read commands from a file instead of stdin")
	playCmd.Flags().BoolVar(&flagScriptedTiles, "scripted-tiles", false, "Take new tiles from the input instead of the RNG")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := console.NewLogger(os.Stderr, logLevel())
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// Create runtime config
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	rc.Verbose = logLevel() == "debug"
	seed := rc.ResolvedSeed()

	// Open the command source
	var src io.Reader = os.Stdin
	interactive := flagScript == "" && term.IsTerminal(int(os.Stdin.Fd()))
	if flagScript != "" {
		f, openErr := os.Open(flagScript)
		if openErr != nil {
			return fmt.Errorf("cannot open script: %w", openErr)
		}
		defer f.Close()
		src = f
	}

	var opts []script.Option
	if flagScriptedTiles {
		opts = append(opts, script.WithTiles())
	}
	// A typo at the prompt should not end the game. Script files stay strict.
	if flagScript == "" {
		opts = append(opts, script.SkipInvalid(func(line int, err error) {
			logger.Warn("ignored input", "line", line, "error", err)
		}))
	}
	reader := script.NewReader(src, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scripted tiles interleave with moves in one stream, so the reader
	// must serve both on the game goroutine. Otherwise moves are read on
	// their own goroutine so Ctrl+C ends a blocked read.
	var (
		tiles   t2048.TileSource
		in      core.Input
		feedErr chan error
	)
	if flagScriptedTiles {
		tiles = reader
		in = reader
	} else {
		tiles = t2048.NewRandomSource(seed, cfg.Board.Size, cfg.Spawn.FourProbability)
		queue := core.NewQueueInput(16)
		feedErr = make(chan error, 1)
		go func() {
			feedErr <- script.Feed(ctx, reader, queue)
			queue.Close()
		}()
		in = queue
	}

	if rc.Verbose {
		tiles = console.LogTiles(tiles, logger)
		in = console.LogInput(in, logger)
	}

	obs := console.NewObserver(logger)
	game := t2048.New(cfg.Rules(), tiles, obs)

	logger.Info("game started",
		"size", cfg.Board.Size,
		"win", cfg.Board.WinTile,
		"seed", seed,
		"scripted_tiles", flagScriptedTiles,
	)

	session, err := game.NewSession()
	if err != nil {
		return err
	}
	if interactive {
		in = console.Prompt(in, os.Stdout, session)
	}

	runErr := game.Run(ctx, session, in)
	if runErr == nil && feedErr != nil {
		select {
		case runErr = <-feedErr:
		default:
		}
	}
	if err := console.WriteSummary(os.Stdout, session, obs.Stats()); err != nil {
		return err
	}
	return runErr
}
