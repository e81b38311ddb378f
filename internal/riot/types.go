// Package riot holds the Riot match-v5 document types consumed by the
// analyzer. Both documents are read-only inputs: nothing in this repo
// mutates them after decoding.
package riot

// Match is the match document from /lol/match/v5/matches/{matchId}.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"` // seconds
	GameVersion  string        `json:"gameVersion"`
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	ParticipantID      int    `json:"participantId"`
	PUUID              string `json:"puuid"`
	ChampionName       string `json:"championName"`
	TeamID             int    `json:"teamId"`       // 100 or 200
	TeamPosition       string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	IndividualPosition string `json:"individualPosition"`
	Win                bool   `json:"win"`
	Item0              int    `json:"item0"`
	Item1              int    `json:"item1"`
	Item2              int    `json:"item2"`
	Item3              int    `json:"item3"`
	Item4              int    `json:"item4"`
	Item5              int    `json:"item5"`
	Item6              int    `json:"item6"` // trinket slot
}

// Items returns the seven item slots in order. Slot value 0 means empty.
func (p *Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// Position returns teamPosition, falling back to individualPosition.
func (p *Participant) Position() string {
	if p.TeamPosition != "" {
		return p.TeamPosition
	}
	if p.IndividualPosition != "" {
		return p.IndividualPosition
	}
	return "UNKNOWN"
}

// Timeline is the timeline document from
// /lol/match/v5/matches/{matchId}/timeline.
type Timeline struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`
}

type TimelineInfo struct {
	FrameInterval int     `json:"frameInterval"` // milliseconds
	Frames        []Frame `json:"frames"`
}

// Frame is one timestamped snapshot of the match plus the events observed
// up to it. ParticipantFrames is keyed by participant id rendered as a
// decimal string ("1".."10"), as the wire format delivers it.
type Frame struct {
	Timestamp         int64                       `json:"timestamp"` // milliseconds
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []Event                     `json:"events"`
}

// ParticipantFrame is a cumulative snapshot: every numeric field is a
// running total since match start, not a delta since the previous frame.
type ParticipantFrame struct {
	MinionsKilled            int         `json:"minionsKilled"`
	JungleMinionsKilled      int         `json:"jungleMinionsKilled"`
	TotalGold                int         `json:"totalGold"`
	CurrentGold              int         `json:"currentGold"`
	GoldPerSecond            int         `json:"goldPerSecond"`
	XP                       int         `json:"xp"`
	Level                    int         `json:"level"`
	TimeEnemySpentControlled int         `json:"timeEnemySpentControlled"`
	DamageStats              DamageStats `json:"damageStats"`
	Position                 *Position   `json:"position,omitempty"`
}

type DamageStats struct {
	TotalDamageDone            int `json:"totalDamageDone"`
	TotalDamageDoneToChampions int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken           int `json:"totalDamageTaken"`
	PhysicalDamageDone         int `json:"physicalDamageDone"`
	MagicDamageDone            int `json:"magicDamageDone"`
	TrueDamageDone             int `json:"trueDamageDone"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Timeline event type strings.
const (
	EventChampionKill        = "CHAMPION_KILL"
	EventChampionSpecialKill = "CHAMPION_SPECIAL_KILL"
	EventEliteMonsterKill    = "ELITE_MONSTER_KILL"
	EventBuildingKill        = "BUILDING_KILL"
	EventWardPlaced          = "WARD_PLACED"
	EventWardKill            = "WARD_KILL"
)

// Event is one polymorphic timeline event. Fields not relevant to a given
// type are zero-valued. Events carry their own timestamp, which can be more
// precise than the enclosing frame's.
type Event struct {
	Type                    string    `json:"type"`
	Timestamp               int64     `json:"timestamp"` // milliseconds
	KillerID                int       `json:"killerId,omitempty"`
	VictimID                int       `json:"victimId,omitempty"`
	CreatorID               int       `json:"creatorId,omitempty"`
	AssistingParticipantIDs []int     `json:"assistingParticipantIds,omitempty"`
	KillType                string    `json:"killType,omitempty"`
	MonsterType             string    `json:"monsterType,omitempty"`
	MonsterSubType          string    `json:"monsterSubType,omitempty"`
	KillerTeamID            int       `json:"killerTeamId,omitempty"`
	BuildingType            string    `json:"buildingType,omitempty"`
	TowerType               string    `json:"towerType,omitempty"`
	TeamID                  int       `json:"teamId,omitempty"`
	WardType                string    `json:"wardType,omitempty"`
	Position                *Position `json:"position,omitempty"`
}

// TimestampMS returns the event's own timestamp, or the enclosing frame's
// when the event carries none.
func (e *Event) TimestampMS(frameMS int64) int64 {
	if e.Timestamp > 0 {
		return e.Timestamp
	}
	return frameMS
}

// HasAssist reports whether the given participant id is in the event's
// assisting set.
func (e *Event) HasAssist(participantID int) bool {
	for _, id := range e.AssistingParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}
