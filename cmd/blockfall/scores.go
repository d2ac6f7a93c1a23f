package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best (or most recent) recorded games.

Examples:
  blockfall scores
  blockfall scores --limit 20
  blockfall scores --recent
  blockfall scores --tui
  blockfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("All scores deleted.")
		return
	}

	if flagScoresTUI {
		rc := runtimeConfig()
		if _, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	title := "High Scores"
	var scores []storage.ScoreEntry
	if flagScoresRecent {
		title = "Recent Games"
		scores, err = store.RecentScores(flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall' to set the first high score!")
		return
	}

	p := message.NewPrinter(language.English)

	// Print header
	p.Printf("  %-4s  %-12s  %10s  %6s  %4s  %s\n", "Rank", "Player", "Score", "Lines", "Lvl", "Date")
	p.Printf("  %-4s  %-12s  %10s  %6s  %4s  %s\n", "----", "------", "-----", "-----", "---", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		p.Printf("  %-4d  %-12s  %10d  %6d  %4d  %s\n",
			i+1, entry.Player, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	// Show totals
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		p.Printf("Best: %d   Games: %d   Lines: %d\n", stats.HighScore, stats.GamesCount, stats.TotalLines)
	}
}
