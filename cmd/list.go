package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/report"
	"github.com/lucbat/go-lol-coach/internal/storage"
)

var listPUUID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPUUID, "puuid", "", "highlight matches for this puuid")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	records, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'lolcoach parse <match.json> <timeline.json> --puuid <puuid>' to add one.")
		return nil
	}

	report.PrintMatchList(os.Stdout, records, listPUUID)
	return nil
}
