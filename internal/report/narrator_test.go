package report

import (
	"strings"
	"testing"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// stubNamer resolves a fixed id set.
type stubNamer map[int]string

func (s stubNamer) ItemName(id int) string {
	if name, ok := s[id]; ok {
		return name
	}
	return "?"
}

// sampleAnalysis builds a complete analysis for rendering tests.
func sampleAnalysis() *model.TimelineAnalysis {
	a := &model.TimelineAnalysis{
		MatchID:             "NA1_1234567890",
		PUUID:               "p1",
		ChampionName:        "Zed",
		Role:                "MIDDLE",
		GameDuration:        1920, // 32 min
		EarlyGame:           model.NewPhaseStats("Early Game", 0, 672),
		MidGame:             model.NewPhaseStats("Mid Game", 672, 1344),
		LateGame:            model.NewPhaseStats("Late Game", 1344, 1920),
		FirstBlood:          true,
		FirstBloodTime:      342,
		Triplekills:         1,
		DragonsParticipated: 2,
		TowersDestroyed:     1,
		ObjectiveSpawns: []model.ObjectiveSpawn{
			{Type: model.ObjectiveDragon, SpawnTime: 300},
			{Type: model.ObjectiveGrubs, SpawnTime: 480},
			{Type: model.ObjectiveBaron, SpawnTime: 1200},
		},
		LaneOpponentID: 2,
		Matchup:        "Zed vs Talon",
		Build:          []int{3031, 3036},
		AllyTeam:       []string{"LeeSin (JUNGLE)"},
		EnemyTeam:      []string{"Talon (MIDDLE)", "Jinx (BOTTOM)"},
	}
	a.EarlyGame.Kills = 2
	a.EarlyGame.TotalGold = 4200
	a.EarlyGame.CS = 80
	a.EarlyGame.Level = 9
	a.EarlyGame.GoldDiffSnapshots = []int{100, 500}
	a.MidGame.Deaths = 1
	a.MidGame.Assists = 3
	a.MidGame.TotalGold = 9000
	a.LateGame.Kills = 4
	a.LateGame.CS = 210
	a.LateGame.TotalGold = 14500
	a.LateGame.Level = 16
	a.LateGame.DamageToChampions = 28000
	a.LateGame.DamageTaken = 15000
	a.LateGame.WardsPlaced = 9
	return a
}

// TestFormatForLLM_Deterministic: repeated rendering is byte-identical.
func TestFormatForLLM_Deterministic(t *testing.T) {
	a := sampleAnalysis()
	namer := stubNamer{3031: "Infinity Edge", 3036: "Lord Dominik's Regards"}

	first := FormatForLLM(a, model.ResultVictory, namer)
	for i := 0; i < 5; i++ {
		if got := FormatForLLM(a, model.ResultVictory, namer); got != first {
			t.Fatalf("rendering %d differs from first", i)
		}
	}
}

func TestFormatForLLM_Header(t *testing.T) {
	a := sampleAnalysis()
	out := FormatForLLM(a, model.ResultVictory, nil)

	if !strings.Contains(out, "Zed (MIDDLE) | Zed vs Talon | VICTORY | 32min") {
		t.Error("missing header line")
	}
	if !strings.Contains(out, "Allies: LeeSin (JUNGLE)") {
		t.Error("missing ally roster")
	}
	if !strings.Contains(out, "Enemies: Talon (MIDDLE), Jinx (BOTTOM)") {
		t.Error("missing enemy roster")
	}
	// No namer: raw ids.
	if !strings.Contains(out, "Build: 3031, 3036") {
		t.Error("missing raw-id build line")
	}
}

func TestFormatForLLM_ItemNames(t *testing.T) {
	a := sampleAnalysis()
	namer := stubNamer{3031: "Infinity Edge", 3036: "Lord Dominik's Regards"}
	out := FormatForLLM(a, model.ResultVictory, namer)
	if !strings.Contains(out, "Build: Infinity Edge, Lord Dominik's Regards") {
		t.Error("missing named build line")
	}
}

func TestFormatForLLM_Highlights(t *testing.T) {
	a := sampleAnalysis()
	out := FormatForLLM(a, model.ResultVictory, nil)
	if !strings.Contains(out, "Highlights: FirstBlood@5.7m | 1xTRIPLE") {
		t.Error("missing highlights line")
	}
}

func TestFormatForLLM_ObjectiveSpawnsSorted(t *testing.T) {
	a := sampleAnalysis()
	// Deliberately unsorted input.
	a.ObjectiveSpawns = []model.ObjectiveSpawn{
		{Type: model.ObjectiveBaron, SpawnTime: 1200},
		{Type: model.ObjectiveDragon, SpawnTime: 300},
	}
	out := FormatForLLM(a, model.ResultVictory, nil)

	dragonIdx := strings.Index(out, "5:00 - DRAGON spawns")
	baronIdx := strings.Index(out, "20:00 - BARON spawns")
	if dragonIdx == -1 || baronIdx == -1 {
		t.Fatal("missing objective spawn lines")
	}
	if dragonIdx > baronIdx {
		t.Error("objective spawns not sorted by time")
	}
}

func TestFormatForLLM_PhaseBlocks(t *testing.T) {
	a := sampleAnalysis()
	out := FormatForLLM(a, model.ResultVictory, nil)

	if !strings.Contains(out, "EARLY GAME (0-11min)") {
		t.Error("missing early phase header")
	}
	if !strings.Contains(out, "MID GAME (11-22min)") {
		t.Error("missing mid phase header")
	}
	if !strings.Contains(out, "LATE GAME (22-32min)") {
		t.Error("missing late phase header")
	}
	// Early gold diff averages +300.
	if !strings.Contains(out, "Diff vs Opponent: +300g") {
		t.Error("missing early diff line")
	}
	// avg 300 > 200 → winning assessment.
	if !strings.Contains(out, "WINNING - Ahead in lane") {
		t.Error("missing early assessment")
	}
}

func TestFormatForLLM_Summary(t *testing.T) {
	a := sampleAnalysis()
	out := FormatForLLM(a, model.ResultVictory, nil)

	// Totals: 6/1/3 → KDA 9.00; late CS/level/gold.
	if !strings.Contains(out, "Total: 6/1/3 (9.00) | CS: 210 | Lvl: 16 | Gold: 14k") {
		t.Error("missing summary totals line")
	}
	if !strings.Contains(out, "Vision: 9w (0c) / 0cleared | Score: 9.0") {
		t.Error("missing vision summary line")
	}
	// Mid deaths 1 > early deaths 0 → DECLINED; late kills 4 >= mid 0 → IMPROVED.
	if !strings.Contains(out, "Trajectory: Early->Mid DECLINED | Mid->Late IMPROVED") {
		t.Error("missing trajectory line")
	}
	if !strings.Contains(out, "INSIGHTS:") {
		t.Error("missing insights header")
	}
}

func TestEventMarkers(t *testing.T) {
	a := sampleAnalysis()
	a.EarlyGame.Events = []model.ParticipatedEvent{
		{Type: "CHAMPION_KILL", Participation: model.ParticipationKill, TimestampSec: 342},
		{Type: "CHAMPION_KILL", Participation: model.ParticipationDeath, TimestampSec: 400},
	}
	out := FormatForLLM(a, model.ResultVictory, nil)
	if !strings.Contains(out, "Events: 5:42-KILL, 6:40-DEATH") {
		t.Error("missing condensed event markers")
	}
}
