package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// PrintMatchHeader prints a one-line summary header for an analyzed match.
func PrintMatchHeader(w io.Writer, r model.MatchRecord) {
	fmt.Fprintf(w, "\nMatch: %s  |  %s (%s)  |  %s  |  %s  |  %dmin  |  %d/%d/%d\n\n",
		r.MatchID, r.Champion, r.Role, r.Matchup, r.Result, r.GameDuration/60,
		r.Kills, r.Deaths, r.Assists)
}

// PrintPhaseTable prints the per-phase breakdown table.
func PrintPhaseTable(w io.Writer, phases []model.PhaseRecord) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("PHASE", "WINDOW", "K", "D", "A", "KDA", "CS", "CS/MIN",
		"GOLD", "LVL", "GOLD_DIFF", "XP_DIFF", "CS_DIFF", "WARDS", "DMG_DEALT", "DMG_TAKEN")

	for _, p := range phases {
		table.Append(
			p.Phase,
			fmt.Sprintf("%d-%dmin", p.StartSec/60, p.EndSec/60),
			strconv.Itoa(p.Kills),
			strconv.Itoa(p.Deaths),
			strconv.Itoa(p.Assists),
			fmt.Sprintf("%.2f", p.KDA()),
			strconv.Itoa(p.TotalCS()),
			fmt.Sprintf("%.1f", p.CSPerMin()),
			strconv.Itoa(p.TotalGold),
			strconv.Itoa(p.Level),
			fmt.Sprintf("%+.0f", p.AvgGoldDiff),
			fmt.Sprintf("%+.0f", p.AvgXPDiff),
			fmt.Sprintf("%+.1f", p.AvgCSDiff),
			strconv.Itoa(p.WardsPlaced),
			strconv.Itoa(p.DamageToChampions),
			strconv.Itoa(p.DamageTaken),
		)
	}
	table.Render()
}

// PrintObjectiveTable prints the objective spawn timeline with the player's
// deaths correlated against it.
func PrintObjectiveTable(w io.Writer, spawns []model.ObjectiveSpawn, deaths []model.DeathBeforeObjective) {
	if len(spawns) == 0 {
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
	table.Header("OBJECTIVE", "SPAWNS", "KILLED", "DIED_BEFORE")

	for _, obj := range spawns {
		killed := "—"
		if obj.KillTime > 0 {
			killed = clock(obj.KillTime)
		}
		died := " "
		for _, d := range deaths {
			if d.ObjectiveType == obj.Type && d.ObjectiveTime == obj.EffectiveTime() {
				died = fmt.Sprintf("%s (-%ds)", clock(d.DeathTime), int(d.SecondsBefore))
				break
			}
		}
		table.Append(obj.Type, clock(obj.SpawnTime), killed, died)
	}
	table.Render()
}

// PrintMatchList prints the stored match index.
// If focusPUUID is non-empty, that player's rows are marked with ">".
func PrintMatchList(w io.Writer, records []model.MatchRecord, focusPUUID string) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header(" ", "MATCH", "CHAMPION", "ROLE", "MATCHUP", "RESULT", "MIN", "K", "D", "A", "ANALYZED")

	for _, r := range records {
		marker := " "
		if focusPUUID != "" && r.PUUID == focusPUUID {
			marker = ">"
		}
		table.Append(
			marker,
			r.MatchID,
			r.Champion,
			r.Role,
			r.Matchup,
			r.Result,
			strconv.Itoa(r.GameDuration/60),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Deaths),
			strconv.Itoa(r.Assists),
			r.AnalyzedAt,
		)
	}
	table.Render()
}

// PrintPlayerOverview prints per-champion aggregates across all stored
// matches for one player.
func PrintPlayerOverview(w io.Writer, rows []model.ChampionAggregate) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("CHAMPION", "MATCHES", "WINS", "WIN%", "K", "D", "A", "KDA")

	for _, r := range rows {
		table.Append(
			r.Champion,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Wins),
			fmt.Sprintf("%.0f%%", r.WinRate()*100),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Deaths),
			strconv.Itoa(r.Assists),
			fmt.Sprintf("%.2f", r.KDA()),
		)
	}
	table.Render()
}
