package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/emojidrop/internal/config"
	"github.com/vovakirdan/emojidrop/internal/core"
	"github.com/vovakirdan/emojidrop/internal/games/emojidrop"
	"github.com/vovakirdan/emojidrop/internal/platform/tui"
	"github.com/vovakirdan/emojidrop/internal/registry"
	"github.com/vovakirdan/emojidrop/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing EmojiDrop (or another registered game).

Controls:
  Left/Right, A/D  - Move the falling emoji
  P/Space          - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Scoring:
  Every group of three cleared emojis scores 10 points, doubled for each
  cascade round. Each landing that clears something speeds up the drop.

Examples:
  emojidrop play
  emojidrop play --seed 42
  emojidrop play --config ./wide-well.yaml
  emojidrop play --log-file play.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// gameArg returns the game named on the command line, defaulting to EmojiDrop.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return emojidrop.GameID
}

// mustExist exits with a hint when the game is not registered.
func mustExist(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'emojidrop list' to see available games.")
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyConfigPath checks a custom config up front so a bad file is
// reported before the TUI takes over the terminal.
func applyConfigPath() {
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadEmojiDrop(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	emojidrop.SetConfigPath(flagConfig)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	mustExist(gameID)
	applyConfigPath()

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
