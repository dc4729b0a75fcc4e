package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	edcore "github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
	"github.com/vovakirdan/emojidrop/internal/storage"
)

const barWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show play statistics and per-emotion clears",
	Long: `Display run totals and how many of each emotion were cleared across
all recorded runs.

Examples:
  emojidrop stats
  emojidrop stats --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	mustExist(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if stats.GamesCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	totals, err := store.SymbolTotals(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving clears: %v\n", err)
		return
	}

	fmt.Printf("Runs:          %d\n", stats.GamesCount)
	fmt.Printf("Best score:    %d\n", stats.HighScore)
	fmt.Printf("Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("Total score:   %d\n", stats.TotalScore)
	fmt.Printf("Cells cleared: %d\n", stats.TotalCleared)
	fmt.Printf("Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	peak := 0
	for _, n := range totals {
		peak = max(peak, n)
	}

	t := newTable("Emotion", "Cleared", "")
	for _, sym := range edcore.AllSymbols() {
		n := totals[sym.String()]
		t.Row(symbolLabel(sym.String()), strconv.Itoa(n), bar(n, peak))
	}
	fmt.Println(t)
}

// bar draws n scaled against peak as a horizontal bar.
func bar(n, peak int) string {
	if peak <= 0 || n <= 0 {
		return ""
	}
	return strings.Repeat("█", max(n*barWidth/peak, 1))
}
