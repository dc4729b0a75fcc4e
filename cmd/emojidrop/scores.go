package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	edcore "github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
	"github.com/vovakirdan/emojidrop/internal/registry"
	"github.com/vovakirdan/emojidrop/internal/storage"
)

var (
	flagLimit int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores with the emotion cleared most in each run.

Examples:
  emojidrop scores
  emojidrop scores --limit 25
  emojidrop scores --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded runs for the game")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// newTable returns a table styled for terminal output.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// symbolLabel prefixes a symbol name with its emoji when it names a symbol.
func symbolLabel(name string) string {
	if sym, ok := edcore.ParseSymbol(name); ok {
		return sym.Emoji() + " " + sym.String()
	}
	if name == "" {
		return "-"
	}
	return name
}

func runScores(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	mustExist(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'emojidrop play %s' to set the first high score!\n", gameID)
		return
	}

	t := newTable("Rank", "Score", "Most Cleared", "Cleared", "Date")
	for i, entry := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(entry.Score),
			symbolLabel(entry.MostCleared),
			strconv.Itoa(entry.ClearedTotal),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
