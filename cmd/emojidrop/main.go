// emojidrop is a falling-block emoji match-3 game for the terminal.
//
// Usage:
//
//	emojidrop play             - Play EmojiDrop
//	emojidrop menu             - Start menu with the scoreboard
//	emojidrop list             - List available games
//	emojidrop serve            - Start SSH server for remote play
//	emojidrop scores [game]    - Show high scores
//	emojidrop stats [game]     - Show totals and per-emotion clears
//	emojidrop config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.emojidrop/scores.db)
//	--log-file <path>  - Write logs to a file while the TUI is running
//	--debug            - Log landings, cascades and game over
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/emojidrop/internal/games/emojidrop"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emojidrop",
	Short: "EmojiDrop - match falling emotions in your terminal",
	Long: `EmojiDrop is a falling-block puzzle game. Emotion emojis drop one at a
time into a well; line up three or more of the same emotion in a row or
column to clear them. Cleared cells let the emojis above fall, and any
new lines they form clear too, doubling the points for each round.

Available commands:
  play     - Play EmojiDrop directly
  menu     - Interactive menu with the scoreboard
  list     - Show all available games
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View totals and per-emotion clears
  config   - Print the effective game config

Examples:
  emojidrop play
  emojidrop play --seed 42
  emojidrop menu
  emojidrop serve --ssh :2222
  emojidrop scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.emojidrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (play and menu need --log-file)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns a logger for the terminal UI. The TUI owns the
// terminal, so logs go to --log-file or are discarded. A warning is
// written to stderr when --debug would otherwise be dropped.
// The returned closer must be called when the program exits.
func openLogger(stderr io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		if flagDebug {
			log.NewWithOptions(stderr, log.Options{Prefix: "emojidrop"}).
				Warn("--debug has no effect without --log-file; logs are discarded")
		}
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "emojidrop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	emojidrop.SetLogger(logger)

	return logger, func() { f.Close() }, nil
}
