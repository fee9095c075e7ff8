package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/procroids/internal/games/asteroids"
	"github.com/vovakirdan/procroids/internal/platform/tui"
	"github.com/vovakirdan/procroids/internal/registry"
	"github.com/vovakirdan/procroids/internal/storage"
)

var (
	flagBoard     bool
	flagClear     bool
	flagAllScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode (default: procroids).

Examples:
  procroids scores
  procroids scores asteroids
  procroids scores --all            # Every recorded round
  procroids scores --board          # Interactive scoreboard
  procroids scores asteroids --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := string(asteroids.ModeProcs)
	if len(args) == 1 {
		mode = args[0]
	}

	info, ok := modeInfo(mode)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'procroids list' to see available modes", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, mode, width, height)
	}

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(mode)
	} else {
		scores, err = store.TopScores(mode, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'procroids play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Kills", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Kills, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(mode); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func modeInfo(id string) (registry.GameInfo, bool) {
	for _, g := range registry.List() {
		if g.ID == id {
			return g, true
		}
	}
	return registry.GameInfo{}, false
}
