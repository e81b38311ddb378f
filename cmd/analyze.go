package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/lucbat/go-lol-coach/internal/model"
	"github.com/lucbat/go-lol-coach/internal/storage"
)

const analyzeSystemPrompt = `You are a League of Legends performance coach. You are given structured data
from a timeline-analysis tool and a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable — focus on what the player can actually improve.
- Avoid generic League advice unless it directly explains a pattern in the data.

Metrics glossary:
- KDA: (kills + assists) ÷ deaths. 3.0+ is solid, below 2.0 needs work.
- CS/min: creeps killed per minute. Laners: 5 is low, 8+ is excellent.
- Gold/XP/CS diff: average lead over the direct lane opponent per phase. Positive = ahead.
- Early/Mid/Late Game: 0-35%/35-70%/70-100% of the match, capped at 14 and 25 minutes.
- Vision score: wards placed + 1.5 × wards cleared.
- Control wards: purchasable wards that deny enemy vision; key for objective setup.
- Deaths before objectives: deaths within 2 minutes before a dragon/baron/grubs timer.
- Objective participation: dragons + barons/heralds the player killed or assisted on.
- Trajectory: phase-to-phase trend of deaths (Early->Mid) and kills (Mid->Late).`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzeMatchCmd = &cobra.Command{
	Use:   "match <match-prefix> <question>",
	Short: "Analyze a single stored match with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeMatch,
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <puuid> <question>",
	Short: "Analyze a player's stored matches with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzeCmd.AddCommand(analyzeMatchCmd)
	analyzeCmd.AddCommand(analyzePlayerCmd)
}

func runAnalyzeMatch(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	record, err := db.GetMatchByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("find match: %w", err)
	}
	if record == nil {
		return fmt.Errorf("no match found with id prefix %q", args[0])
	}
	question := args[1]

	// The stored narrative is already shaped for LLM consumption.
	narrative, err := db.GetReport(record.MatchID, record.PUUID)
	if err != nil {
		return fmt.Errorf("get report: %w", err)
	}
	if narrative == "" {
		return fmt.Errorf("no report stored for %s", record.MatchID)
	}

	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, narrative, question)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	puuid, question := args[0], args[1]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	aggs, err := db.AggregateByChampion(puuid)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	if len(aggs) == 0 {
		return fmt.Errorf("no data found for puuid %s", puuid)
	}

	records, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}

	contextJSON, err := buildPlayerContext(puuid, aggs, records)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildPlayerContext serialises aggregated player data into compact JSON.
func buildPlayerContext(puuid string, aggs []model.ChampionAggregate, records []model.MatchRecord) (string, error) {
	type champEntry struct {
		Champion string  `json:"champion"`
		Matches  int     `json:"matches"`
		Wins     int     `json:"wins"`
		WinPct   float64 `json:"win_pct"`
		KDA      float64 `json:"kda"`
	}
	type matchEntry struct {
		MatchID  string `json:"match_id"`
		Champion string `json:"champion"`
		Role     string `json:"role"`
		Matchup  string `json:"matchup"`
		Result   string `json:"result"`
		Minutes  int    `json:"minutes"`
		KDA      string `json:"kda"`
	}

	champs := make([]champEntry, 0, len(aggs))
	for _, a := range aggs {
		champs = append(champs, champEntry{
			Champion: a.Champion,
			Matches:  a.Matches,
			Wins:     a.Wins,
			WinPct:   round2(a.WinRate() * 100),
			KDA:      round2(a.KDA()),
		})
	}

	var matches []matchEntry
	for _, r := range records {
		if r.PUUID != puuid {
			continue
		}
		matches = append(matches, matchEntry{
			MatchID:  r.MatchID,
			Champion: r.Champion,
			Role:     r.Role,
			Matchup:  r.Matchup,
			Result:   r.Result,
			Minutes:  r.GameDuration / 60,
			KDA:      fmt.Sprintf("%d/%d/%d", r.Kills, r.Deaths, r.Assists),
		})
	}

	doc := map[string]interface{}{
		"subject":          "player",
		"puuid":            puuid,
		"matches_analyzed": len(matches),
		"champions":        champs,
		"matches":          matches,
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// round2 rounds a float64 to 2 decimal places.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, data, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", data, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
