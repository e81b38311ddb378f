package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <match-prefix>",
	Short: "Show stored match stats by match id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	record, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if record == nil {
		fmt.Fprintf(os.Stderr, "No match found with id prefix %q\n", prefix)
		return nil
	}

	return showStored(db, record.MatchID, record.PUUID)
}
