package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/analyzer"
	"github.com/lucbat/go-lol-coach/internal/ddragon"
	"github.com/lucbat/go-lol-coach/internal/insight"
	"github.com/lucbat/go-lol-coach/internal/report"
	"github.com/lucbat/go-lol-coach/internal/riot"
	"github.com/lucbat/go-lol-coach/internal/storage"
)

var (
	parsePUUID   string
	parseOffline bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <match.json> <timeline.json>",
	Short: "Analyze a match + timeline document pair and store the report",
	Args:  cobra.ExactArgs(2),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parsePUUID, "puuid", "", "puuid of the participant to analyze (required)")
	parseCmd.Flags().BoolVar(&parseOffline, "offline", false, "skip Data Dragon lookups, render item ids")
	parseCmd.MarkFlagRequired("puuid")
}

func runParse(cmd *cobra.Command, args []string) error {
	matchPath, timelinePath := args[0], args[1]

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	match, err := riot.LoadMatch(matchPath)
	if err != nil {
		return fmt.Errorf("load match: %w", err)
	}
	timeline, err := riot.LoadTimeline(timelinePath)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}

	exists, err := db.MatchExists(match.Metadata.MatchID, parsePUUID)
	if err != nil {
		return fmt.Errorf("check match: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Match %s already stored — showing cached results.\n", match.Metadata.MatchID)
		return showStored(db, match.Metadata.MatchID, parsePUUID)
	}

	fmt.Fprintf(os.Stdout, "Analyzing %s for %s...\n", match.Metadata.MatchID, parsePUUID)
	analysis, err := analyzer.Analyze(match, timeline, parsePUUID)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	result, err := analyzer.MatchResult(match, parsePUUID)
	if err != nil {
		return fmt.Errorf("match result: %w", err)
	}

	var namer report.ItemNamer
	if !parseOffline {
		dd := ddragon.NewClient()
		if err := dd.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: item names unavailable (%v), using ids\n", err)
		}
		namer = dd
	}

	insights := insight.Generate(analysis, result)
	narrative := report.FormatForLLM(analysis, result, namer)
	analyzedAt := time.Now().UTC().Format(time.RFC3339)

	if err := db.InsertAnalysis(analysis, result, narrative, analyzedAt, insights); err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}

	record := analysis.Record(result, analyzedAt)
	report.PrintMatchHeader(os.Stdout, record)
	report.PrintPhaseTable(os.Stdout, analysis.PhaseRecords())
	report.PrintObjectiveTable(os.Stdout, analysis.ObjectiveSpawns, analysis.DeathsBeforeObjectives)
	printInsights(insights)
	return nil
}

func printInsights(lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(os.Stdout, "\nINSIGHTS:")
	for _, line := range lines {
		fmt.Fprintln(os.Stdout, line)
	}
}

func showStored(db *storage.DB, matchID, puuid string) error {
	record, err := db.GetMatchByPrefix(matchID)
	if err != nil || record == nil {
		return fmt.Errorf("match not found: %s", matchID)
	}
	phases, err := db.GetPhaseStats(matchID, puuid)
	if err != nil {
		return err
	}
	spawns, err := db.GetObjectiveSpawns(matchID, puuid)
	if err != nil {
		return err
	}
	deaths, err := db.GetDeathsBeforeObjectives(matchID, puuid)
	if err != nil {
		return err
	}
	insights, err := db.GetInsights(matchID, puuid)
	if err != nil {
		return err
	}

	report.PrintMatchHeader(os.Stdout, *record)
	report.PrintPhaseTable(os.Stdout, phases)
	report.PrintObjectiveTable(os.Stdout, spawns, deaths)
	printInsights(insights)
	return nil
}
