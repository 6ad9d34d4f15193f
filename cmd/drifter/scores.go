package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/platform/tui"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:     "scores",
	Aliases: []string{"stats"},
	Short:   "Browse recorded sessions",
	Long: `Show the best recorded runs and aggregate session statistics.

By default opens an interactive browser; --plain prints to stdout instead.

Examples:
  drifter scores
  drifter scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print stats to stdout instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewStatsModel(store, "drifter", width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}

// printStats writes a plain-text session summary to stdout.
func printStats(store *storage.Store) {
	stats, err := store.Stats("drifter")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	sessions, err := store.TopSessions("drifter", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Portal Drifter - Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'drifter play' to record the first one!")
		return
	}

	fmt.Printf("Runs: %d   Best: %d   Deepest dimension: %d   Play time: %s\n",
		stats.GamesPlayed, stats.BestScore, stats.HighestLevel, stats.TotalPlay.Round(time.Second))
	fmt.Println()

	fmt.Printf("  %-4s  %-10s  %-9s  %-8s  %s\n", "Rank", "Score", "Dimension", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-8s  %s\n", "----", "-----", "---------", "----", "----")
	for i, entry := range sessions {
		fmt.Printf("  %-4d  %-10d  %-9d  %-8s  %s\n",
			i+1, entry.Score, entry.LevelReached,
			entry.Duration.Round(time.Second),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
