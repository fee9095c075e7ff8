package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/procroids/internal/storage"
)

var flagKillsLimit int

var killsCmd = &cobra.Command{
	Use:   "kills",
	Short: "Show the kill audit",
	Long: `List the most recent kill requests carried out in procroids mode,
newest first. Method "echo" marks a dry run, "sigterm" a real signal.

Examples:
  procroids kills
  procroids kills --limit 50`,
	Args: cobra.NoArgs,
	RunE: runKills,
}

func init() {
	killsCmd.Flags().IntVarP(&flagKillsLimit, "limit", "n", 20, "Number of entries to show")
}

func runKills(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	kills, err := store.RecentKills(flagKillsLimit)
	if err != nil {
		return fmt.Errorf("retrieving kills: %w", err)
	}

	if len(kills) == 0 {
		fmt.Println("No kills recorded yet.")
		return nil
	}

	fmt.Printf("  %-19s  %-8s  %-7s  %s\n", "Time", "PID", "Method", "Result")
	fmt.Printf("  %-19s  %-8s  %-7s  %s\n", "----", "---", "------", "------")
	for _, k := range kills {
		result := "ok"
		if k.Error != "" {
			result = k.Error
		}
		fmt.Printf("  %-19s  %-8d  %-7s  %s\n", k.CreatedAt.Format("2006-01-02 15:04:05"), k.PID, k.Method, result)
	}
	return nil
}
