// Package analyzer is the timeline analysis engine: a pure, synchronous,
// single-pass transformation of one match document plus one timeline
// document into a phase-segmented TimelineAnalysis for one participant.
// It performs no I/O and never mutates its inputs.
package analyzer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucbat/go-lol-coach/internal/model"
	"github.com/lucbat/go-lol-coach/internal/riot"
)

// ErrParticipantNotFound is returned when the analyzed puuid is absent from
// the match document. Fatal: no partial analysis is produced.
var ErrParticipantNotFound = errors.New("participant not found in match document")

// Phase boundary caps, in seconds.
const (
	earlyCapSec = 14 * 60
	midCapSec   = 25 * 60
)

// PhaseWindows derives the early/mid boundary seconds from game duration:
// early ends at 14 minutes or 35% of the game, mid at 25 minutes or 70%,
// whichever comes first. The late window always ends at game duration, so
// the three windows partition [0, duration] with no gap and no overlap.
func PhaseWindows(gameDuration int) (earlyEnd, midEnd int) {
	earlyEnd = earlyCapSec
	if v := int(float64(gameDuration) * 0.35); v < earlyEnd {
		earlyEnd = v
	}
	midEnd = midCapSec
	if v := int(float64(gameDuration) * 0.70); v < midEnd {
		midEnd = v
	}
	return earlyEnd, midEnd
}

// FindParticipant locates the participant record for a puuid.
func FindParticipant(m *riot.Match, puuid string) (*riot.Participant, error) {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i], nil
		}
	}
	return nil, fmt.Errorf("puuid %s: %w", puuid, ErrParticipantNotFound)
}

// MatchResult returns VICTORY or DEFEAT for the given puuid.
func MatchResult(m *riot.Match, puuid string) (string, error) {
	p, err := FindParticipant(m, puuid)
	if err != nil {
		return "", err
	}
	if p.Win {
		return model.ResultVictory, nil
	}
	return model.ResultDefeat, nil
}

// FinalBuild extracts the final item ids from slots 0-6, dropping empty
// slots (id 0).
func FinalBuild(p *riot.Participant) []int {
	var build []int
	for _, id := range p.Items() {
		if id != 0 {
			build = append(build, id)
		}
	}
	return build
}

// TeamCompositions splits all ten participants into ally and enemy rosters
// relative to the analyzed participant, excluding the participant from the
// ally list. Each entry renders as "Champion (POSITION)".
func TeamCompositions(m *riot.Match, participantID int) (ally, enemy []string) {
	var teamID int
	for i := range m.Info.Participants {
		if m.Info.Participants[i].ParticipantID == participantID {
			teamID = m.Info.Participants[i].TeamID
			break
		}
	}
	for i := range m.Info.Participants {
		p := &m.Info.Participants[i]
		pos := p.TeamPosition
		if pos == "" {
			pos = "UNKNOWN"
		}
		entry := fmt.Sprintf("%s (%s)", p.ChampionName, pos)
		switch {
		case p.TeamID == teamID && p.ParticipantID != participantID:
			ally = append(ally, entry)
		case p.TeamID != teamID:
			enemy = append(enemy, entry)
		}
	}
	return ally, enemy
}

// Analyze walks the full frame sequence once and assembles the analysis for
// the participant identified by puuid.
func Analyze(m *riot.Match, tl *riot.Timeline, puuid string) (*model.TimelineAnalysis, error) {
	self, err := FindParticipant(m, puuid)
	if err != nil {
		return nil, err
	}
	pid := self.ParticipantID
	duration := m.Info.GameDuration

	earlyEnd, midEnd := PhaseWindows(duration)
	early := model.NewPhaseStats("Early Game", 0, earlyEnd)
	mid := model.NewPhaseStats("Mid Game", earlyEnd, midEnd)
	late := model.NewPhaseStats("Late Game", midEnd, duration)
	phases := []*model.PhaseStats{early, mid, late}

	opponentID := ResolveLaneOpponent(m, tl, pid)

	matchup := self.ChampionName
	if opponentID != 0 {
		for i := range m.Info.Participants {
			if m.Info.Participants[i].ParticipantID == opponentID {
				matchup = fmt.Sprintf("%s vs %s", self.ChampionName, m.Info.Participants[i].ChampionName)
				break
			}
		}
	}

	ally, enemy := TeamCompositions(m, pid)

	role := self.TeamPosition
	if role == "" {
		role = "UNKNOWN"
	}

	a := &model.TimelineAnalysis{
		MatchID:         m.Metadata.MatchID,
		ParticipantID:   pid,
		PUUID:           puuid,
		ChampionName:    self.ChampionName,
		Role:            role,
		GameDuration:    duration,
		EarlyGame:       early,
		MidGame:         mid,
		LateGame:        late,
		ObjectiveSpawns: SeedObjectives(duration),
		LaneOpponentID:  opponentID,
		Matchup:         matchup,
		Build:           FinalBuild(self),
		AllyTeam:        ally,
		EnemyTeam:       enemy,
	}

	selfKey := strconv.Itoa(pid)
	oppKey := strconv.Itoa(opponentID)

	// killSeenPrior: any CHAMPION_KILL in a strictly earlier frame. A kill
	// qualifies as first blood only when no earlier frame held one.
	killSeenPrior := false
	var deathTimes []float64

	for fi := range tl.Info.Frames {
		frame := &tl.Info.Frames[fi]
		frameSec := float64(frame.Timestamp) / 1000

		phase := phaseFor(phases, frameSec)
		if phase == nil {
			continue
		}

		if pf, ok := frame.ParticipantFrames[selfKey]; ok {
			applySnapshot(phase, &pf)
			if opponentID != 0 {
				if of, ok := frame.ParticipantFrames[oppKey]; ok {
					phase.GoldDiffSnapshots = append(phase.GoldDiffSnapshots, pf.TotalGold-of.TotalGold)
					phase.XPDiffSnapshots = append(phase.XPDiffSnapshots, pf.XP-of.XP)
					phase.CSDiffSnapshots = append(phase.CSDiffSnapshots,
						(pf.MinionsKilled+pf.JungleMinionsKilled)-(of.MinionsKilled+of.JungleMinionsKilled))
					phase.LevelDiffSnapshots = append(phase.LevelDiffSnapshots, pf.Level-of.Level)
				}
			}
		}

		frameHadKill := false
		for ei := range frame.Events {
			ev := &frame.Events[ei]
			evSec := float64(ev.TimestampMS(frame.Timestamp)) / 1000

			switch ev.Type {
			case riot.EventChampionKill:
				frameHadKill = true
				switch {
				case ev.KillerID == pid:
					phase.Kills++
					if !a.FirstBlood && !killSeenPrior {
						a.FirstBlood = true
						a.FirstBloodTime = frameSec
					}
				case ev.VictimID == pid:
					phase.Deaths++
					deathTimes = append(deathTimes, evSec)
				case ev.HasAssist(pid):
					phase.Assists++
				}

			case riot.EventChampionSpecialKill:
				if ev.KillerID == pid {
					switch MultiKillTier(ev.KillType) {
					case TierPenta:
						a.Pentakills++
					case TierQuadra:
						a.Quadrakills++
					case TierTriple:
						a.Triplekills++
					case TierDouble:
						a.Doublekills++
					}
				}

			case riot.EventEliteMonsterKill:
				if succ, ok := SuccessorSpawn(ev.MonsterType, evSec); ok {
					a.ObjectiveSpawns = append(a.ObjectiveSpawns, succ)
				}
				if ev.KillerID == pid || ev.HasAssist(pid) {
					switch ObjectiveCategory(ev.MonsterType) {
					case model.ObjectiveDragon:
						a.DragonsParticipated++
					case model.ObjectiveBaron:
						a.BaronsParticipated++
					}
				}

			case riot.EventBuildingKill:
				if ev.BuildingType == TowerBuilding {
					switch {
					case ev.KillerID == pid:
						a.TowersDestroyed++
						phase.TowersKilled++
					case ev.HasAssist(pid):
						phase.TowersAssisted++
					}
				}

			case riot.EventWardPlaced:
				if ev.CreatorID == pid {
					phase.WardsPlaced++
					if IsControlWard(ev.WardType) {
						phase.ControlWardsPlaced++
					}
				}

			case riot.EventWardKill:
				if ev.KillerID == pid {
					phase.WardsKilled++
				}
			}

			if part := Classify(ev, pid); part != model.ParticipationNone {
				phase.Events = append(phase.Events, model.ParticipatedEvent{
					Type:          ev.Type,
					Participation: part,
					TimestampSec:  evSec,
					Event:         ev,
				})
			}
		}
		if frameHadKill {
			killSeenPrior = true
		}
	}

	a.DeathsBeforeObjectives = CorrelateDeaths(deathTimes, a.ObjectiveSpawns)
	return a, nil
}

// phaseFor picks the window containing the frame timestamp by linear scan
// in chronological order. Timestamps at or past the late window's start
// land in the late window regardless of its end, so rounding at the match
// tail cannot drop a frame.
func phaseFor(phases []*model.PhaseStats, sec float64) *model.PhaseStats {
	for _, p := range phases {
		if p.Window.Contains(sec) {
			return p
		}
	}
	late := phases[len(phases)-1]
	if sec >= float64(late.Window.StartSec) {
		return late
	}
	return nil
}

// applySnapshot overwrites the phase's cumulative fields with this frame's
// values. Snapshots are cumulative-to-date, so the last frame observed
// inside a phase is authoritative for the phase.
func applySnapshot(phase *model.PhaseStats, pf *riot.ParticipantFrame) {
	phase.CS = pf.MinionsKilled
	phase.JungleCS = pf.JungleMinionsKilled
	phase.TotalGold = pf.TotalGold
	phase.CurrentGold = pf.CurrentGold
	phase.GoldPerSecond = pf.GoldPerSecond
	phase.XP = pf.XP
	if pf.Level > 0 {
		phase.Level = pf.Level
	}
	phase.TimeEnemyControlled = pf.TimeEnemySpentControlled

	phase.TotalDamageDone = pf.DamageStats.TotalDamageDone
	phase.DamageToChampions = pf.DamageStats.TotalDamageDoneToChampions
	phase.DamageTaken = pf.DamageStats.TotalDamageTaken
	phase.PhysicalDamage = pf.DamageStats.PhysicalDamageDone
	phase.MagicDamage = pf.DamageStats.MagicDamageDone
	phase.TrueDamage = pf.DamageStats.TrueDamageDone
}
