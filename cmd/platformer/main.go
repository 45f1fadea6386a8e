// platformer is a terminal platformer: guide the cat to every fish without
// touching lava or letting the dog fall.
//
// Usage:
//
//	platformer list              - List registered games
//	platformer play              - Pick a level and play the campaign
//	platformer levels            - List the levels of a campaign
//	platformer check <file...>   - Validate level files
//	platformer scores            - Show best times and campaign scores
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible hazard wobble
//	--db <path>         - Set database path (default: ~/.platformer/scores.db)
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - collect every fish in your terminal",
	Long: `TUI Platformer is a terminal platformer. Run, jump and glide the cat
to every fish on the level while dodging lava.

Available commands:
  list     - Show all registered games
  play     - Pick a level and play
  levels   - List the levels of a campaign
  check    - Validate level files
  scores   - View best times and scores
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --levels ./levels --watch
  platformer check ./levels/*.yaml
  platformer serve --ssh :2222
  platformer scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the command logger. Unknown levels fall back to info.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
