// t2048 plays the 2048 sliding-tile game from the command line.
//
// Usage:
//
//	t2048 play                - Play, reading moves from the terminal or stdin
//	t2048 play --script <f>   - Play the moves listed in a file
//	t2048 config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible tiles
//	--config <path>     - Path to a custom config YAML
//	--log               - Record moves and tiles (same as --log-level debug)
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLog      bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 plays the 2048 puzzle: tilt the board north, east, south or west,
merge equal tiles and reach the 2048 tile before the board fills up.

Available commands:
  play     - Play a game from the terminal, stdin or a script file
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42 --difficulty hard
  t2048 play --script moves.txt --log
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagLog, "log", false, "Record moves and tiles")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// logLevel resolves --log and --log-level. An explicit level wins.
func logLevel() string {
	if flagLogLevel == "" && flagLog {
		return "debug"
	}
	return flagLogLevel
}
