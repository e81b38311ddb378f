// Package model holds the analysis result types produced by one engine run.
// All values here are created and owned by a single run; once the analyzer
// returns a TimelineAnalysis nothing mutates it.
package model

import "github.com/lucbat/go-lol-coach/internal/riot"

// Participation is the analyzed participant's role in a timeline event.
type Participation string

const (
	ParticipationNone   Participation = ""
	ParticipationKill   Participation = "KILL"
	ParticipationAssist Participation = "ASSIST"
	ParticipationDeath  Participation = "DEATH"
	ParticipationPlaced Participation = "PLACED"
)

// Match results.
const (
	ResultVictory = "VICTORY"
	ResultDefeat  = "DEFEAT"
)

// Neutral objective types.
const (
	ObjectiveDragon = "DRAGON"
	ObjectiveBaron  = "BARON"
	ObjectiveGrubs  = "GRUBS"
	ObjectiveHerald = "RIFT_HERALD"
)

// PhaseWindow is one of the three time windows partitioning the match.
// Windows are half-open [Start, End) except the late window, which also
// absorbs any timestamp at or past its start.
type PhaseWindow struct {
	Name     string
	StartSec int
	EndSec   int
}

// Contains reports whether the given second offset falls inside the window.
func (w PhaseWindow) Contains(sec float64) bool {
	return float64(w.StartSec) <= sec && sec < float64(w.EndSec)
}

// DurationMin returns the window length in minutes.
func (w PhaseWindow) DurationMin() float64 {
	return float64(w.EndSec-w.StartSec) / 60
}

// ParticipatedEvent is one classified timeline event the analyzed
// participant took part in. Event keeps the raw payload for rendering.
type ParticipatedEvent struct {
	Type          string
	Participation Participation
	TimestampSec  float64
	Event         *riot.Event
}

// PhaseStats accumulates one phase's statistics during the frame pass and
// is frozen into the analysis afterward. Snapshot fields (CS, gold, XP,
// level, damage) hold the last cumulative value observed inside the phase;
// counter fields are event-driven increments.
type PhaseStats struct {
	Window PhaseWindow

	// Combat
	Kills   int
	Deaths  int
	Assists int

	// Farm
	CS       int
	JungleCS int

	// Economy
	TotalGold     int
	CurrentGold   int
	GoldPerSecond int

	// Experience
	XP    int
	Level int

	// Damage, cumulative-to-date at the last frame of the phase.
	TotalDamageDone   int
	DamageToChampions int
	DamageTaken       int
	PhysicalDamage    int
	MagicDamage       int
	TrueDamage        int

	TimeEnemyControlled int

	// Per-frame differentials vs the lane opponent, appended in frame order.
	GoldDiffSnapshots  []int
	XPDiffSnapshots    []int
	CSDiffSnapshots    []int
	LevelDiffSnapshots []int

	// Vision
	WardsPlaced        int
	WardsKilled        int
	ControlWardsPlaced int

	// Structures
	TowersKilled   int
	TowersAssisted int

	Events []ParticipatedEvent
}

// NewPhaseStats returns an empty accumulator for the given window.
func NewPhaseStats(name string, startSec, endSec int) *PhaseStats {
	return &PhaseStats{
		Window: PhaseWindow{Name: name, StartSec: startSec, EndSec: endSec},
		Level:  1,
	}
}

// KDA returns (kills+assists)/deaths with deaths clamped to a minimum of 1.
func (p *PhaseStats) KDA() float64 {
	deaths := p.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}

// TotalCS is lane plus jungle creeps.
func (p *PhaseStats) TotalCS() int {
	return p.CS + p.JungleCS
}

// CSPerMin returns creeps per minute over the phase window, 0 for an empty
// window.
func (p *PhaseStats) CSPerMin() float64 {
	d := p.Window.DurationMin()
	if d <= 0 {
		return 0
	}
	return float64(p.TotalCS()) / d
}

// AvgGoldDiff is the arithmetic mean of the phase's gold differential
// snapshots, 0 when no opponent data was recorded.
func (p *PhaseStats) AvgGoldDiff() float64 { return meanInt(p.GoldDiffSnapshots) }

// AvgXPDiff is the arithmetic mean of the XP differential snapshots.
func (p *PhaseStats) AvgXPDiff() float64 { return meanInt(p.XPDiffSnapshots) }

// AvgCSDiff is the arithmetic mean of the combined CS differential snapshots.
func (p *PhaseStats) AvgCSDiff() float64 { return meanInt(p.CSDiffSnapshots) }

// AvgLevelDiff is the arithmetic mean of the level differential snapshots.
func (p *PhaseStats) AvgLevelDiff() float64 { return meanInt(p.LevelDiffSnapshots) }

func meanInt(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

// ObjectiveSpawn is one spawn/kill record for a neutral objective. KillTime
// and KillerTeam stay zero until a kill is recorded against the spawn.
type ObjectiveSpawn struct {
	Type       string
	SpawnTime  float64 // seconds
	KillTime   float64 // seconds, 0 = not killed
	KillerTeam int     // 100 or 200, 0 = unknown
}

// EffectiveTime is the kill time when known, else the spawn time. Used for
// death-timing correlation.
func (o ObjectiveSpawn) EffectiveTime() float64 {
	if o.KillTime > 0 {
		return o.KillTime
	}
	return o.SpawnTime
}

// DeathBeforeObjective correlates a player death with an objective whose
// effective time falls within the two minutes after the death.
type DeathBeforeObjective struct {
	DeathTime     float64
	ObjectiveType string
	ObjectiveTime float64
	SecondsBefore float64
}

// TimelineAnalysis is the immutable output of one engine run.
type TimelineAnalysis struct {
	MatchID       string
	ParticipantID int
	PUUID         string
	ChampionName  string
	Role          string
	GameDuration  int // seconds

	EarlyGame *PhaseStats
	MidGame   *PhaseStats
	LateGame  *PhaseStats

	// Special events
	FirstBlood     bool
	FirstBloodTime float64 // seconds
	Pentakills     int
	Quadrakills    int
	Triplekills    int
	Doublekills    int

	// Objectives
	DragonsParticipated int
	BaronsParticipated  int // barons + heralds
	TowersDestroyed     int

	ObjectiveSpawns        []ObjectiveSpawn
	DeathsBeforeObjectives []DeathBeforeObjective

	LaneOpponentID int // 0 = no opponent resolved

	Matchup   string // "Zed vs Talon", or just "Zed" with no opponent
	Build     []int  // final item ids, empty slots excluded
	AllyTeam  []string
	EnemyTeam []string
}

// Phases returns the three phase accumulators in chronological order.
func (a *TimelineAnalysis) Phases() []*PhaseStats {
	return []*PhaseStats{a.EarlyGame, a.MidGame, a.LateGame}
}

// TotalKills sums kills across all three phases.
func (a *TimelineAnalysis) TotalKills() int {
	return a.EarlyGame.Kills + a.MidGame.Kills + a.LateGame.Kills
}

// TotalDeaths sums deaths across all three phases.
func (a *TimelineAnalysis) TotalDeaths() int {
	return a.EarlyGame.Deaths + a.MidGame.Deaths + a.LateGame.Deaths
}

// TotalAssists sums assists across all three phases.
func (a *TimelineAnalysis) TotalAssists() int {
	return a.EarlyGame.Assists + a.MidGame.Assists + a.LateGame.Assists
}

// TotalWardsPlaced sums wards placed across all three phases.
func (a *TimelineAnalysis) TotalWardsPlaced() int {
	return a.EarlyGame.WardsPlaced + a.MidGame.WardsPlaced + a.LateGame.WardsPlaced
}

// TotalWardsKilled sums wards cleared across all three phases.
func (a *TimelineAnalysis) TotalWardsKilled() int {
	return a.EarlyGame.WardsKilled + a.MidGame.WardsKilled + a.LateGame.WardsKilled
}

// TotalControlWards sums control wards placed across all three phases.
func (a *TimelineAnalysis) TotalControlWards() int {
	return a.EarlyGame.ControlWardsPlaced + a.MidGame.ControlWardsPlaced + a.LateGame.ControlWardsPlaced
}

// TotalKDA returns the whole-game (kills+assists)/deaths ratio with deaths
// clamped to a minimum of 1.
func (a *TimelineAnalysis) TotalKDA() float64 {
	deaths := a.TotalDeaths()
	if deaths < 1 {
		deaths = 1
	}
	return float64(a.TotalKills()+a.TotalAssists()) / float64(deaths)
}

// VisionScore is wards placed + 1.5 x wards killed.
func (a *TimelineAnalysis) VisionScore() float64 {
	return float64(a.TotalWardsPlaced()) + float64(a.TotalWardsKilled())*1.5
}

// GameDurationMin returns the match length in minutes.
func (a *TimelineAnalysis) GameDurationMin() float64 {
	return float64(a.GameDuration) / 60
}

// PhaseRecord is the flat, storable projection of one phase's statistics.
// Snapshot slices do not round-trip through storage; their averages are
// frozen here instead.
type PhaseRecord struct {
	MatchID  string
	PUUID    string
	Phase    string
	StartSec int
	EndSec   int

	Kills   int
	Deaths  int
	Assists int

	CS        int
	JungleCS  int
	TotalGold int
	XP        int
	Level     int

	DamageToChampions int
	DamageTaken       int

	AvgGoldDiff float64
	AvgXPDiff   float64
	AvgCSDiff   float64

	WardsPlaced  int
	WardsKilled  int
	ControlWards int

	TowersKilled   int
	TowersAssisted int
}

// KDA returns (kills+assists)/deaths with deaths clamped to a minimum of 1.
func (p PhaseRecord) KDA() float64 {
	deaths := p.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}

// TotalCS is lane plus jungle creeps.
func (p PhaseRecord) TotalCS() int {
	return p.CS + p.JungleCS
}

// CSPerMin returns creeps per minute over the phase window.
func (p PhaseRecord) CSPerMin() float64 {
	d := float64(p.EndSec-p.StartSec) / 60
	if d <= 0 {
		return 0
	}
	return float64(p.TotalCS()) / d
}

// Record freezes the analysis header into a storable match record.
func (a *TimelineAnalysis) Record(result, analyzedAt string) MatchRecord {
	return MatchRecord{
		MatchID:      a.MatchID,
		PUUID:        a.PUUID,
		Champion:     a.ChampionName,
		Role:         a.Role,
		Matchup:      a.Matchup,
		Result:       result,
		GameDuration: a.GameDuration,
		Kills:        a.TotalKills(),
		Deaths:       a.TotalDeaths(),
		Assists:      a.TotalAssists(),
		AnalyzedAt:   analyzedAt,
	}
}

// PhaseRecords freezes the three phases into storable records.
func (a *TimelineAnalysis) PhaseRecords() []PhaseRecord {
	out := make([]PhaseRecord, 0, 3)
	for _, p := range a.Phases() {
		out = append(out, PhaseRecord{
			MatchID:           a.MatchID,
			PUUID:             a.PUUID,
			Phase:             p.Window.Name,
			StartSec:          p.Window.StartSec,
			EndSec:            p.Window.EndSec,
			Kills:             p.Kills,
			Deaths:            p.Deaths,
			Assists:           p.Assists,
			CS:                p.CS,
			JungleCS:          p.JungleCS,
			TotalGold:         p.TotalGold,
			XP:                p.XP,
			Level:             p.Level,
			DamageToChampions: p.DamageToChampions,
			DamageTaken:       p.DamageTaken,
			AvgGoldDiff:       p.AvgGoldDiff(),
			AvgXPDiff:         p.AvgXPDiff(),
			AvgCSDiff:         p.AvgCSDiff(),
			WardsPlaced:       p.WardsPlaced,
			WardsKilled:       p.WardsKilled,
			ControlWards:      p.ControlWardsPlaced,
			TowersKilled:      p.TowersKilled,
			TowersAssisted:    p.TowersAssisted,
		})
	}
	return out
}

// ChampionAggregate is one player's totals on a single champion across all
// stored matches.
type ChampionAggregate struct {
	Champion string
	Matches  int
	Wins     int
	Kills    int
	Deaths   int
	Assists  int
}

// WinRate returns wins/matches as a fraction, 0 for no matches.
func (c ChampionAggregate) WinRate() float64 {
	if c.Matches == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Matches)
}

// KDA returns (kills+assists)/deaths with deaths clamped to a minimum of 1.
func (c ChampionAggregate) KDA() float64 {
	deaths := c.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(c.Kills+c.Assists) / float64(deaths)
}

// MatchRecord is the stored header row for one analyzed (match, player)
// pair, used by the list/show/summary commands.
type MatchRecord struct {
	MatchID      string
	PUUID        string
	Champion     string
	Role         string
	Matchup      string
	Result       string
	GameDuration int
	Kills        int
	Deaths       int
	Assists      int
	AnalyzedAt   string
}
