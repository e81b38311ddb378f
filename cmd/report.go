package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/storage"
)

var reportCmd = &cobra.Command{
	Use:   "report <match-prefix>",
	Short: "Print the stored match narrative",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	record, err := db.GetMatchByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if record == nil {
		fmt.Fprintf(os.Stderr, "No match found with id prefix %q\n", args[0])
		return nil
	}

	narrative, err := db.GetReport(record.MatchID, record.PUUID)
	if err != nil {
		return fmt.Errorf("get report: %w", err)
	}
	fmt.Fprint(os.Stdout, narrative)
	return nil
}
