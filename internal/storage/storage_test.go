package storage

import (
	"testing"

	"github.com/lucbat/go-lol-coach/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testAnalysis builds a small but complete analysis for round-trip tests.
func testAnalysis(matchID, puuid, champ string) *model.TimelineAnalysis {
	a := &model.TimelineAnalysis{
		MatchID:      matchID,
		PUUID:        puuid,
		ChampionName: champ,
		Role:         "MIDDLE",
		Matchup:      champ + " vs Talon",
		GameDuration: 1800,
		EarlyGame:    model.NewPhaseStats("Early Game", 0, 630),
		MidGame:      model.NewPhaseStats("Mid Game", 630, 1260),
		LateGame:     model.NewPhaseStats("Late Game", 1260, 1800),
		ObjectiveSpawns: []model.ObjectiveSpawn{
			{Type: model.ObjectiveDragon, SpawnTime: 300},
			{Type: model.ObjectiveBaron, SpawnTime: 1200},
		},
		DeathsBeforeObjectives: []model.DeathBeforeObjective{
			{DeathTime: 1100, ObjectiveType: model.ObjectiveBaron, ObjectiveTime: 1200, SecondsBefore: 100},
		},
	}
	a.EarlyGame.Kills = 2
	a.EarlyGame.GoldDiffSnapshots = []int{200, 400}
	a.MidGame.Deaths = 1
	a.LateGame.Assists = 5
	a.LateGame.TotalGold = 13000
	return a
}

func TestInsertAndExists(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")

	err := db.InsertAnalysis(a, model.ResultVictory, "narrative text", "2026-08-28T10:00:00Z",
		[]string{"  - Strong objective participation - good map awareness and priority"})
	if err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	exists, err := db.MatchExists("NA1_100", "p1")
	if err != nil {
		t.Fatalf("MatchExists: %v", err)
	}
	if !exists {
		t.Error("expected match to exist after insert")
	}

	exists2, _ := db.MatchExists("NA1_100", "other-puuid")
	if exists2 {
		t.Error("expected match for other puuid to not exist")
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")

	for i := 0; i < 2; i++ {
		if err := db.InsertAnalysis(a, model.ResultVictory, "text", "2026-08-28T10:00:00Z",
			[]string{"  - line one", "  - line two"}); err != nil {
			t.Fatalf("InsertAnalysis round %d: %v", i, err)
		}
	}

	records, err := db.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after re-insert, got %d", len(records))
	}
	insights, _ := db.GetInsights("NA1_100", "p1")
	if len(insights) != 2 {
		t.Errorf("expected 2 insight lines after re-insert, got %d", len(insights))
	}
}

func TestPhaseStatsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")
	if err := db.InsertAnalysis(a, model.ResultVictory, "", "2026-08-28T10:00:00Z", nil); err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	phases, err := db.GetPhaseStats("NA1_100", "p1")
	if err != nil {
		t.Fatalf("GetPhaseStats: %v", err)
	}
	if len(phases) != 3 {
		t.Fatalf("expected 3 phase rows, got %d", len(phases))
	}
	// Chronological order.
	if phases[0].Phase != "Early Game" || phases[2].Phase != "Late Game" {
		t.Errorf("phase order = %s, %s, %s", phases[0].Phase, phases[1].Phase, phases[2].Phase)
	}
	if phases[0].Kills != 2 {
		t.Errorf("early kills = %d, want 2", phases[0].Kills)
	}
	if phases[0].AvgGoldDiff != 300 {
		t.Errorf("early avg gold diff = %v, want 300", phases[0].AvgGoldDiff)
	}
	if phases[2].TotalGold != 13000 {
		t.Errorf("late gold = %d, want 13000", phases[2].TotalGold)
	}
}

func TestObjectivesAndDeathsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")
	if err := db.InsertAnalysis(a, model.ResultDefeat, "", "2026-08-28T10:00:00Z", nil); err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	spawns, err := db.GetObjectiveSpawns("NA1_100", "p1")
	if err != nil {
		t.Fatalf("GetObjectiveSpawns: %v", err)
	}
	if len(spawns) != 2 || spawns[0].Type != model.ObjectiveDragon {
		t.Errorf("spawns = %+v", spawns)
	}

	deaths, err := db.GetDeathsBeforeObjectives("NA1_100", "p1")
	if err != nil {
		t.Fatalf("GetDeathsBeforeObjectives: %v", err)
	}
	if len(deaths) != 1 || deaths[0].SecondsBefore != 100 {
		t.Errorf("deaths = %+v", deaths)
	}
}

func TestGetMatchByPrefix(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_4567891230", "p1", "Zed")
	if err := db.InsertAnalysis(a, model.ResultVictory, "", "2026-08-28T10:00:00Z", nil); err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	record, err := db.GetMatchByPrefix("NA1_4567")
	if err != nil {
		t.Fatalf("GetMatchByPrefix: %v", err)
	}
	if record == nil || record.MatchID != "NA1_4567891230" {
		t.Errorf("record = %+v", record)
	}

	missing, err := db.GetMatchByPrefix("EUW1_")
	if err != nil {
		t.Fatalf("GetMatchByPrefix (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown prefix, got %+v", missing)
	}
}

func TestGetReport(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")
	narrative := "line one\nline two\n"
	if err := db.InsertAnalysis(a, model.ResultVictory, narrative, "2026-08-28T10:00:00Z", nil); err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	got, err := db.GetReport("NA1_100", "p1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got != narrative {
		t.Errorf("report round-trip mismatch: %q", got)
	}
}

func TestDeleteMatch(t *testing.T) {
	db := openMemDB(t)
	a := testAnalysis("NA1_100", "p1", "Zed")
	if err := db.InsertAnalysis(a, model.ResultVictory, "text", "2026-08-28T10:00:00Z",
		[]string{"  - line"}); err != nil {
		t.Fatalf("InsertAnalysis: %v", err)
	}

	if err := db.DeleteMatch("NA1_100", "p1"); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}

	exists, _ := db.MatchExists("NA1_100", "p1")
	if exists {
		t.Error("match still exists after delete")
	}
	phases, _ := db.GetPhaseStats("NA1_100", "p1")
	if len(phases) != 0 {
		t.Errorf("phase rows remain after delete: %d", len(phases))
	}
	insights, _ := db.GetInsights("NA1_100", "p1")
	if len(insights) != 0 {
		t.Errorf("insight rows remain after delete: %d", len(insights))
	}
}

func TestAggregateByChampion(t *testing.T) {
	db := openMemDB(t)

	zed1 := testAnalysis("NA1_1", "p1", "Zed")
	zed2 := testAnalysis("NA1_2", "p1", "Zed")
	ahri := testAnalysis("NA1_3", "p1", "Ahri")
	other := testAnalysis("NA1_4", "p2", "Zed")

	for _, in := range []struct {
		a      *model.TimelineAnalysis
		result string
	}{
		{zed1, model.ResultVictory},
		{zed2, model.ResultDefeat},
		{ahri, model.ResultVictory},
		{other, model.ResultVictory},
	} {
		if err := db.InsertAnalysis(in.a, in.result, "", "2026-08-28T10:00:00Z", nil); err != nil {
			t.Fatalf("InsertAnalysis: %v", err)
		}
	}

	rows, err := db.AggregateByChampion("p1")
	if err != nil {
		t.Fatalf("AggregateByChampion: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 champions for p1, got %d", len(rows))
	}
	// Ordered by match count desc: Zed (2) before Ahri (1).
	if rows[0].Champion != "Zed" || rows[0].Matches != 2 || rows[0].Wins != 1 {
		t.Errorf("zed row = %+v", rows[0])
	}
	if rows[1].Champion != "Ahri" || rows[1].Wins != 1 {
		t.Errorf("ahri row = %+v", rows[1])
	}
}
