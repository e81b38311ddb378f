package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/storage"
)

var dropCmd = &cobra.Command{
	Use:   "drop <match-prefix>",
	Short: "Delete a stored match and all of its analysis rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
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

	if err := db.DeleteMatch(record.MatchID, record.PUUID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted %s (%s)\n", record.MatchID, record.Champion)
	return nil
}
