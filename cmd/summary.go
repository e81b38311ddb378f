package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/report"
	"github.com/lucbat/go-lol-coach/internal/storage"
)

var summaryPUUID string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-champion aggregates across all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryPUUID, "puuid", "", "only count matches for this puuid")
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.AggregateByChampion(summaryPUUID)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet.")
		return nil
	}

	report.PrintPlayerOverview(os.Stdout, rows)
	return nil
}
