package insight

import (
	"strings"
	"testing"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// newAnalysis builds an empty analysis with standard 30-minute windows.
func newAnalysis(role string, durationSec int) *model.TimelineAnalysis {
	return &model.TimelineAnalysis{
		MatchID:      "NA1_1",
		PUUID:        "p1",
		ChampionName: "Zed",
		Role:         role,
		GameDuration: durationSec,
		EarlyGame:    model.NewPhaseStats("Early Game", 0, 630),
		MidGame:      model.NewPhaseStats("Mid Game", 630, 1260),
		LateGame:     model.NewPhaseStats("Late Game", 1260, durationSec),
	}
}

func hasLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// TestSupportVisionExcellent: a support placing 40 wards over a 30-minute
// game rates as an excellent vision game, not a low ward count.
func TestSupportVisionExcellent(t *testing.T) {
	a := newAnalysis("UTILITY", 1800)
	a.MidGame.WardsPlaced = 20
	a.LateGame.WardsPlaced = 20

	lines := Generate(a, model.ResultVictory)

	if !hasLine(lines, "Excellent vision game (40 wards)") {
		t.Errorf("missing excellent-vision insight in %v", lines)
	}
	if hasLine(lines, "Low ward count") {
		t.Errorf("unexpected low-ward insight in %v", lines)
	}
}

// TestSupportLowWardsWarning: a low ward count for a support carries the
// extra responsibility warning line.
func TestSupportLowWardsWarning(t *testing.T) {
	a := newAnalysis("UTILITY", 1800)
	a.EarlyGame.WardsPlaced = 5

	lines := Generate(a, model.ResultVictory)

	if !hasLine(lines, "Low ward count (5)") {
		t.Errorf("missing low-ward insight in %v", lines)
	}
	if !hasLine(lines, "WARNING: As support") {
		t.Errorf("missing support warning in %v", lines)
	}
}

// TestCleanLaningLoss: zero early deaths in a defeat produces the
// couldn't-translate insight.
func TestCleanLaningLoss(t *testing.T) {
	a := newAnalysis("MIDDLE", 1800)
	lines := Generate(a, model.ResultDefeat)
	if !hasLine(lines, "Strong laning but couldn't translate to victory") {
		t.Errorf("missing clean-laning-loss insight in %v", lines)
	}
}

// TestRoughLaningRecovery: 2+ early deaths in a victory reads as a recovery,
// which takes precedence over the rough-laning insight.
func TestRoughLaningRecovery(t *testing.T) {
	a := newAnalysis("MIDDLE", 1800)
	a.EarlyGame.Deaths = 3
	lines := Generate(a, model.ResultVictory)
	if !hasLine(lines, "Recovered from rough laning") {
		t.Errorf("missing recovery insight in %v", lines)
	}
	if hasLine(lines, "Rough laning phase") {
		t.Errorf("rough-laning fired despite victory in %v", lines)
	}
}

func TestCSPerMinThresholds(t *testing.T) {
	low := newAnalysis("MIDDLE", 1800)
	low.LateGame.CS = 90 // 3.0/min
	if lines := Generate(low, model.ResultVictory); !hasLine(lines, "Low CS/min (3.0)") {
		t.Errorf("missing low-cs insight in %v", lines)
	}

	high := newAnalysis("MIDDLE", 1800)
	high.LateGame.CS = 240 // 8.0/min
	if lines := Generate(high, model.ResultVictory); !hasLine(lines, "Excellent CS/min (8.0)") {
		t.Errorf("missing excellent-cs insight in %v", lines)
	}

	support := newAnalysis("UTILITY", 1800)
	support.LateGame.CS = 30
	if lines := Generate(support, model.ResultVictory); hasLine(lines, "CS/min") {
		t.Errorf("cs insight fired for support in %v", lines)
	}
}

func TestDeathsBeforeObjectivesDetail(t *testing.T) {
	a := newAnalysis("MIDDLE", 1800)
	a.DeathsBeforeObjectives = []model.DeathBeforeObjective{
		{DeathTime: 500, ObjectiveType: model.ObjectiveDragon, ObjectiveTime: 600, SecondsBefore: 100},
		{DeathTime: 1100, ObjectiveType: model.ObjectiveBaron, ObjectiveTime: 1200, SecondsBefore: 100},
	}

	lines := Generate(a, model.ResultDefeat)

	if !hasLine(lines, "CRITICAL: 2 death(s) before objectives") {
		t.Errorf("missing critical line in %v", lines)
	}
	if !hasLine(lines, "Died 8:20 (100s before DRAGON at 10:00)") {
		t.Errorf("missing detail line in %v", lines)
	}
}

func TestDamageEfficiency(t *testing.T) {
	a := newAnalysis("BOTTOM", 1800)
	a.LateGame.DamageToChampions = 10000
	a.LateGame.DamageTaken = 20000

	lines := Generate(a, model.ResultVictory)

	if !hasLine(lines, "Taking too much damage (20,000) vs dealing (10,000)") {
		t.Errorf("missing damage-efficiency insight (comma-grouped) in %v", lines)
	}
}

func TestPentakillInsight(t *testing.T) {
	a := newAnalysis("MIDDLE", 1800)
	a.Pentakills = 1
	a.Triplekills = 2
	lines := Generate(a, model.ResultVictory)
	if !hasLine(lines, "PENTAKILL achieved") {
		t.Errorf("missing pentakill insight in %v", lines)
	}
	if hasLine(lines, "multiple multi-kills") {
		t.Errorf("multi-kill insight should yield to pentakill in %v", lines)
	}
}

// TestOrderIsStable: insights come out in rule-table order regardless of
// which rules fire.
func TestOrderIsStable(t *testing.T) {
	a := newAnalysis("MIDDLE", 1800)
	a.LateGame.Deaths = 4
	a.Pentakills = 1

	lines := Generate(a, model.ResultVictory)

	posLate, posPenta := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "Late game positioning") {
			posLate = i
		}
		if strings.Contains(l, "PENTAKILL") {
			posPenta = i
		}
	}
	if posLate == -1 || posPenta == -1 {
		t.Fatalf("expected both insights, got %v", lines)
	}
	if posLate > posPenta {
		t.Errorf("late-game insight after pentakill insight: %v", lines)
	}
}
