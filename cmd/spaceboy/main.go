// spaceboy is a side-scrolling platformer: run, jump, collect coins and
// reach the beacon at the end of each level.
//
// Usage:
//
//	spaceboy play                 - Open the game window
//	spaceboy levels               - List the configured levels
//	spaceboy replay <file>        - Re-run a recorded session without a window
//
// Global flags:
//
//	--config <dir>      - Read configs from dir instead of the built-in set
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceboy",
	Short: "Space Boy - a fixed-step platformer",
	Long: `Space Boy is a small platformer built on a fixed-timestep simulation.

Available commands:
  play     - Play the game
  levels   - Show the configured levels
  replay   - Re-run a recording headless and print the outcome

Examples:
  spaceboy play
  spaceboy play --level 2 --record run.json
  spaceboy replay run.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceboy",
		Level:           level,
	}), nil
}
