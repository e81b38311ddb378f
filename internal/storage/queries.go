package storage

import (
	"database/sql"
	"fmt"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// MatchExists returns true if an analysis for the (match, player) pair is
// already stored.
func (db *DB) MatchExists(matchID, puuid string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE match_id = ? AND puuid = ?",
		matchID, puuid).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertAnalysis stores one full analysis in a transaction: the header row,
// the three phase rows, objective spawns, death correlations, and insight
// lines. Uses INSERT OR REPLACE throughout so re-parsing a match is
// idempotent.
func (db *DB) InsertAnalysis(a *model.TimelineAnalysis, result, report, analyzedAt string, insights []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO matches(match_id, puuid, champion, role, matchup, result,
			game_duration, kills, deaths, assists, analyzed_at, report)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.MatchID, a.PUUID, a.ChampionName, a.Role, a.Matchup, result,
		a.GameDuration, a.TotalKills(), a.TotalDeaths(), a.TotalAssists(),
		analyzedAt, report,
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", a.MatchID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO phase_stats(
			match_id, puuid, phase, start_sec, end_sec,
			kills, deaths, assists, cs, jungle_cs,
			total_gold, xp, level, damage_to_champions, damage_taken,
			avg_gold_diff, avg_xp_diff, avg_cs_diff,
			wards_placed, wards_killed, control_wards,
			towers_killed, towers_assisted
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range a.PhaseRecords() {
		_, err = stmt.Exec(
			p.MatchID, p.PUUID, p.Phase, p.StartSec, p.EndSec,
			p.Kills, p.Deaths, p.Assists, p.CS, p.JungleCS,
			p.TotalGold, p.XP, p.Level, p.DamageToChampions, p.DamageTaken,
			p.AvgGoldDiff, p.AvgXPDiff, p.AvgCSDiff,
			p.WardsPlaced, p.WardsKilled, p.ControlWards,
			p.TowersKilled, p.TowersAssisted,
		)
		if err != nil {
			return fmt.Errorf("insert phase_stats %s: %w", p.Phase, err)
		}
	}

	// Replaced wholesale: seq-keyed rows from an earlier parse could
	// outnumber this one's.
	for _, table := range []string{"objective_spawns", "deaths_before_objectives", "insights"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE match_id = ? AND puuid = ?", a.MatchID, a.PUUID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, obj := range a.ObjectiveSpawns {
		_, err = tx.Exec(`
			INSERT INTO objective_spawns(match_id, puuid, seq, type, spawn_time, kill_time, killer_team)
			VALUES (?,?,?,?,?,?,?)`,
			a.MatchID, a.PUUID, i, obj.Type, obj.SpawnTime, obj.KillTime, obj.KillerTeam)
		if err != nil {
			return fmt.Errorf("insert objective_spawns: %w", err)
		}
	}

	for i, d := range a.DeathsBeforeObjectives {
		_, err = tx.Exec(`
			INSERT INTO deaths_before_objectives(match_id, puuid, seq, death_time, objective_type, objective_time, seconds_before)
			VALUES (?,?,?,?,?,?,?)`,
			a.MatchID, a.PUUID, i, d.DeathTime, d.ObjectiveType, d.ObjectiveTime, d.SecondsBefore)
		if err != nil {
			return fmt.Errorf("insert deaths_before_objectives: %w", err)
		}
	}

	for i, line := range insights {
		_, err = tx.Exec(`
			INSERT INTO insights(match_id, puuid, seq, line) VALUES (?,?,?,?)`,
			a.MatchID, a.PUUID, i, line)
		if err != nil {
			return fmt.Errorf("insert insights: %w", err)
		}
	}

	return tx.Commit()
}

// ListMatches returns all stored match records ordered by analyzed_at desc.
func (db *DB) ListMatches() ([]model.MatchRecord, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, puuid, champion, role, matchup, result, game_duration,
		       kills, deaths, assists, analyzed_at
		FROM matches ORDER BY analyzed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchRecord
	for rows.Next() {
		var r model.MatchRecord
		if err := rows.Scan(&r.MatchID, &r.PUUID, &r.Champion, &r.Role, &r.Matchup,
			&r.Result, &r.GameDuration, &r.Kills, &r.Deaths, &r.Assists, &r.AnalyzedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetMatchByPrefix finds the first stored match whose id starts with the
// given prefix. Returns nil when nothing matches.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchRecord, error) {
	var r model.MatchRecord
	err := db.conn.QueryRow(`
		SELECT match_id, puuid, champion, role, matchup, result, game_duration,
		       kills, deaths, assists, analyzed_at
		FROM matches WHERE match_id LIKE ? LIMIT 1`, prefix+"%").
		Scan(&r.MatchID, &r.PUUID, &r.Champion, &r.Role, &r.Matchup,
			&r.Result, &r.GameDuration, &r.Kills, &r.Deaths, &r.Assists, &r.AnalyzedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetPhaseStats returns the stored phase rows for a match in chronological
// order.
func (db *DB) GetPhaseStats(matchID, puuid string) ([]model.PhaseRecord, error) {
	rows, err := db.conn.Query(`
		SELECT phase, start_sec, end_sec, kills, deaths, assists, cs, jungle_cs,
		       total_gold, xp, level, damage_to_champions, damage_taken,
		       avg_gold_diff, avg_xp_diff, avg_cs_diff,
		       wards_placed, wards_killed, control_wards,
		       towers_killed, towers_assisted
		FROM phase_stats WHERE match_id = ? AND puuid = ?
		ORDER BY start_sec`, matchID, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PhaseRecord
	for rows.Next() {
		p := model.PhaseRecord{MatchID: matchID, PUUID: puuid}
		if err := rows.Scan(&p.Phase, &p.StartSec, &p.EndSec,
			&p.Kills, &p.Deaths, &p.Assists, &p.CS, &p.JungleCS,
			&p.TotalGold, &p.XP, &p.Level, &p.DamageToChampions, &p.DamageTaken,
			&p.AvgGoldDiff, &p.AvgXPDiff, &p.AvgCSDiff,
			&p.WardsPlaced, &p.WardsKilled, &p.ControlWards,
			&p.TowersKilled, &p.TowersAssisted); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetObjectiveSpawns returns the stored objective timeline in seq order.
func (db *DB) GetObjectiveSpawns(matchID, puuid string) ([]model.ObjectiveSpawn, error) {
	rows, err := db.conn.Query(`
		SELECT type, spawn_time, kill_time, killer_team
		FROM objective_spawns WHERE match_id = ? AND puuid = ?
		ORDER BY seq`, matchID, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ObjectiveSpawn
	for rows.Next() {
		var o model.ObjectiveSpawn
		if err := rows.Scan(&o.Type, &o.SpawnTime, &o.KillTime, &o.KillerTeam); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetDeathsBeforeObjectives returns the stored death correlations in seq order.
func (db *DB) GetDeathsBeforeObjectives(matchID, puuid string) ([]model.DeathBeforeObjective, error) {
	rows, err := db.conn.Query(`
		SELECT death_time, objective_type, objective_time, seconds_before
		FROM deaths_before_objectives WHERE match_id = ? AND puuid = ?
		ORDER BY seq`, matchID, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DeathBeforeObjective
	for rows.Next() {
		var d model.DeathBeforeObjective
		if err := rows.Scan(&d.DeathTime, &d.ObjectiveType, &d.ObjectiveTime, &d.SecondsBefore); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetReport returns the stored narrative text for a match.
func (db *DB) GetReport(matchID, puuid string) (string, error) {
	var report string
	err := db.conn.QueryRow("SELECT report FROM matches WHERE match_id = ? AND puuid = ?",
		matchID, puuid).Scan(&report)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return report, nil
}

// GetInsights returns the stored insight lines in seq order.
func (db *DB) GetInsights(matchID, puuid string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT line FROM insights WHERE match_id = ? AND puuid = ?
		ORDER BY seq`, matchID, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

// DeleteMatch removes a stored analysis and all of its child rows.
func (db *DB) DeleteMatch(matchID, puuid string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"insights", "deaths_before_objectives", "objective_spawns", "phase_stats", "matches"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE match_id = ? AND puuid = ?", matchID, puuid); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// AggregateByChampion returns per-champion totals across all stored matches,
// ordered by match count desc. If puuid is non-empty only that player's
// matches are counted.
func (db *DB) AggregateByChampion(puuid string) ([]model.ChampionAggregate, error) {
	query := `
		SELECT champion, COUNT(1), SUM(result = 'VICTORY'),
		       SUM(kills), SUM(deaths), SUM(assists)
		FROM matches`
	args := []interface{}{}
	if puuid != "" {
		query += " WHERE puuid = ?"
		args = append(args, puuid)
	}
	query += " GROUP BY champion ORDER BY COUNT(1) DESC, champion"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ChampionAggregate
	for rows.Next() {
		var c model.ChampionAggregate
		if err := rows.Scan(&c.Champion, &c.Matches, &c.Wins, &c.Kills, &c.Deaths, &c.Assists); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
