// Package report renders a TimelineAnalysis two ways: a plain-text match
// narrative intended for LLM consumption, and tablewriter views for the
// terminal. The narrative is deterministic: the same analysis and result
// always produce byte-identical output.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucbat/go-lol-coach/internal/insight"
	"github.com/lucbat/go-lol-coach/internal/model"
	"github.com/lucbat/go-lol-coach/internal/riot"
)

// ItemNamer resolves an item id to a display name. Implementations must
// degrade gracefully: when a name is unknown they return the id as a string
// rather than an error, so rendering never fails on catalogue gaps.
type ItemNamer interface {
	ItemName(id int) string
}

const (
	headerRule  = "======================================================================"
	sectionRule = "============================================================"
)

// maxEventsPerPhase caps the condensed event line.
const maxEventsPerPhase = 20

// FormatForLLM renders the full match narrative. namer may be nil, in which
// case build items render as raw ids.
func FormatForLLM(a *model.TimelineAnalysis, result string, namer ItemNamer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", headerRule)
	fmt.Fprintf(&b, "%s (%s) | %s | %s | %dmin\n", a.ChampionName, a.Role, a.Matchup, result, a.GameDuration/60)
	fmt.Fprintf(&b, "%s\n", headerRule)
	fmt.Fprintf(&b, "Allies: %s\n", strings.Join(a.AllyTeam, ", "))
	fmt.Fprintf(&b, "Enemies: %s\n", strings.Join(a.EnemyTeam, ", "))
	fmt.Fprintf(&b, "Build: %s\n\n", buildString(a.Build, namer))

	if h := highlights(a); len(h) > 0 {
		fmt.Fprintf(&b, "Highlights: %s\n", strings.Join(h, " | "))
	}

	fmt.Fprintf(&b, "Objectives: %d Dragons, %d Barons/Heralds, %d Towers\n",
		a.DragonsParticipated, a.BaronsParticipated, a.TowersDestroyed)

	if len(a.ObjectiveSpawns) > 0 {
		b.WriteString("Objective Spawns:\n")
		spawns := make([]model.ObjectiveSpawn, len(a.ObjectiveSpawns))
		copy(spawns, a.ObjectiveSpawns)
		sort.SliceStable(spawns, func(i, j int) bool { return spawns[i].SpawnTime < spawns[j].SpawnTime })
		for _, obj := range spawns {
			fmt.Fprintf(&b, "  %s - %s spawns\n", clock(obj.SpawnTime), obj.Type)
		}
	}
	b.WriteString("\n")

	for _, phase := range a.Phases() {
		writePhase(&b, phase)
	}

	writeSummary(&b, a)

	for _, line := range insight.Generate(a, result) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func buildString(build []int, namer ItemNamer) string {
	if len(build) == 0 {
		return "No items"
	}
	names := make([]string, len(build))
	for i, id := range build {
		if namer != nil {
			names[i] = namer.ItemName(id)
		} else {
			names[i] = strconv.Itoa(id)
		}
	}
	return strings.Join(names, ", ")
}

func highlights(a *model.TimelineAnalysis) []string {
	var h []string
	if a.FirstBlood {
		h = append(h, fmt.Sprintf("FirstBlood@%.1fm", a.FirstBloodTime/60))
	}
	if a.Pentakills > 0 {
		h = append(h, fmt.Sprintf("%dxPENTA", a.Pentakills))
	}
	if a.Quadrakills > 0 {
		h = append(h, fmt.Sprintf("%dxQUAD", a.Quadrakills))
	}
	if a.Triplekills > 0 {
		h = append(h, fmt.Sprintf("%dxTRIPLE", a.Triplekills))
	}
	return h
}

func writePhase(b *strings.Builder, phase *model.PhaseStats) {
	fmt.Fprintf(b, "\n%s\n", sectionRule)
	fmt.Fprintf(b, "%s (%d-%dmin)\n", strings.ToUpper(phase.Window.Name),
		phase.Window.StartSec/60, phase.Window.EndSec/60)
	fmt.Fprintf(b, "%s\n", sectionRule)
	fmt.Fprintf(b, "KDA: %d/%d/%d (%.2f) | Dmg: %dk dealt, %dk taken\n",
		phase.Kills, phase.Deaths, phase.Assists, phase.KDA(),
		phase.DamageToChampions/1000, phase.DamageTaken/1000)
	fmt.Fprintf(b, "CS: %d (%.1f/min) | Gold: %dk | Lvl: %d\n",
		phase.TotalCS(), phase.CSPerMin(), phase.TotalGold/1000, phase.Level)
	fmt.Fprintf(b, "Diff vs Opponent: %+.0fg, %+.0fxp, %+.1fcs\n",
		phase.AvgGoldDiff(), phase.AvgXPDiff(), phase.AvgCSDiff())
	fmt.Fprintf(b, "Vision: %dwards (%dcontrol wards) / %dcleared | Towers: %d+%d\n",
		phase.WardsPlaced, phase.ControlWardsPlaced, phase.WardsKilled,
		phase.TowersKilled, phase.TowersAssisted)
	fmt.Fprintf(b, "%s\n", assessPhase(phase))

	if len(phase.Events) == 0 {
		return
	}
	events := phase.Events
	if len(events) > maxEventsPerPhase {
		events = events[:maxEventsPerPhase]
	}
	markers := make([]string, len(events))
	for i, ev := range events {
		markers[i] = fmt.Sprintf("%s-%s", clock(ev.TimestampSec), eventMarker(ev))
	}
	fmt.Fprintf(b, "Events: %s\n", strings.Join(markers, ", "))
}

// assessPhase grades a phase. Early game grades on the average gold lead
// over the lane opponent; mid and late grade on deaths versus kill impact.
func assessPhase(phase *model.PhaseStats) string {
	if phase.Window.Name == "Early Game" {
		diff := phase.AvgGoldDiff()
		switch {
		case diff > 500:
			return "DOMINANT - Snowballing lead"
		case diff > 200:
			return "WINNING - Ahead in lane"
		case diff > -200:
			return "EVEN - Trading well"
		case diff > -500:
			return "LOSING - Recoverable deficit"
		default:
			return "CRUSHED - Major deficit"
		}
	}
	impact := phase.Kills + phase.Assists
	switch {
	case phase.Deaths == 0 && impact >= 3:
		return "EXCELLENT - High impact, no deaths"
	case phase.Deaths <= 1 && impact >= 2:
		return "STRONG - Good performance"
	case phase.Deaths <= 2:
		return "MODERATE - Average impact"
	default:
		return "STRUGGLING - Too many deaths"
	}
}

// eventMarker condenses a participated event to a compact text marker.
func eventMarker(ev model.ParticipatedEvent) string {
	switch ev.Type {
	case riot.EventChampionKill:
		switch ev.Participation {
		case model.ParticipationKill:
			return "KILL"
		case model.ParticipationAssist:
			return "ASSIST"
		default:
			return "DEATH"
		}
	case riot.EventChampionSpecialKill:
		kt := ev.Event.KillType
		switch {
		case strings.Contains(kt, "PENTA"):
			return "PENTA"
		case strings.Contains(kt, "QUADRA"):
			return "QUAD"
		case strings.Contains(kt, "TRIPLE"):
			return "TRIPLE"
		default:
			return "DOUBLE"
		}
	case riot.EventEliteMonsterKill:
		monster := ev.Event.MonsterType
		if monster == "" {
			monster = "OBJ"
		}
		if ev.Participation == model.ParticipationKill {
			return monster
		}
		return monster + "_ASSIST"
	case riot.EventBuildingKill:
		if ev.Participation == model.ParticipationKill {
			return "TOWER"
		}
		return "TOWER_ASSIST"
	case riot.EventWardPlaced:
		ward := ev.Event.WardType
		if ward == "" {
			ward = "WARD"
		}
		return "WARD_PLACED_" + ward
	case riot.EventWardKill:
		return "WARD_KILLED"
	}
	return "UNKNOWN"
}

func writeSummary(b *strings.Builder, a *model.TimelineAnalysis) {
	kills, deaths, assists := a.TotalKills(), a.TotalDeaths(), a.TotalAssists()
	placed, killed := a.TotalWardsPlaced(), a.TotalWardsKilled()

	fmt.Fprintf(b, "\n%s\n", sectionRule)
	b.WriteString("SUMMARY\n")
	fmt.Fprintf(b, "%s\n", sectionRule)
	fmt.Fprintf(b, "Total: %d/%d/%d (%.2f) | CS: %d | Lvl: %d | Gold: %dk\n",
		kills, deaths, assists, a.TotalKDA(),
		a.LateGame.TotalCS(), a.LateGame.Level, a.LateGame.TotalGold/1000)
	fmt.Fprintf(b, "Vision: %dw (%dc) / %dcleared | Score: %.1f\n",
		placed, a.TotalControlWards(), killed, a.VisionScore())
	fmt.Fprintf(b, "Trajectory: Early->Mid %s | Mid->Late %s\n\n",
		earlyMidTrajectory(a), midLateTrajectory(a))
	b.WriteString("INSIGHTS:\n")
}

func earlyMidTrajectory(a *model.TimelineAnalysis) string {
	if a.MidGame.Deaths <= a.EarlyGame.Deaths {
		return "MAINTAINED"
	}
	return "DECLINED"
}

func midLateTrajectory(a *model.TimelineAnalysis) string {
	switch {
	case a.LateGame.Kills >= a.MidGame.Kills:
		return "IMPROVED"
	case a.LateGame.Deaths <= 1:
		return "STABLE"
	default:
		return "STRUGGLED"
	}
}

// clock renders seconds as M:SS.
func clock(sec float64) string {
	return fmt.Sprintf("%d:%02d", int(sec)/60, int(sec)%60)
}
