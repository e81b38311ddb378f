package analyzer

import (
	"strings"

	"github.com/lucbat/go-lol-coach/internal/model"
	"github.com/lucbat/go-lol-coach/internal/riot"
)

// TowerBuilding is the only buildingType counted toward structure stats;
// inhibitors arrive as INHIBITOR_BUILDING and are ignored.
const TowerBuilding = "TOWER_BUILDING"

// Multi-kill tiers in priority order. Riot kill-type strings are matched by
// substring, so KILL_MULTI payloads resolve to the highest tier present.
const (
	TierPenta  = "PENTA"
	TierQuadra = "QUADRA"
	TierTriple = "TRIPLE"
	TierDouble = "DOUBLE"
)

// Classify returns the analyzed participant's role in the given event.
// Ward placements key off creatorId, ward kills off killerId; everything
// else resolves killer, then assister, then victim. Pure function, no state.
func Classify(e *riot.Event, participantID int) model.Participation {
	switch e.Type {
	case riot.EventWardPlaced:
		if e.CreatorID == participantID {
			return model.ParticipationPlaced
		}
	case riot.EventWardKill:
		if e.KillerID == participantID {
			return model.ParticipationKill
		}
	case riot.EventChampionKill, riot.EventChampionSpecialKill,
		riot.EventEliteMonsterKill, riot.EventBuildingKill:
		switch {
		case e.KillerID == participantID:
			return model.ParticipationKill
		case e.HasAssist(participantID):
			return model.ParticipationAssist
		case e.VictimID == participantID:
			return model.ParticipationDeath
		}
	}
	return model.ParticipationNone
}

// MultiKillTier maps a CHAMPION_SPECIAL_KILL killType string to a tier,
// highest first. Returns "" for non-multi-kill specials (e.g. first blood).
func MultiKillTier(killType string) string {
	switch {
	case strings.Contains(killType, TierPenta):
		return TierPenta
	case strings.Contains(killType, TierQuadra):
		return TierQuadra
	case strings.Contains(killType, TierTriple):
		return TierTriple
	case strings.Contains(killType, TierDouble):
		return TierDouble
	}
	return ""
}

// ObjectiveCategory buckets an elite-monster type string for participation
// counting: every dragon flavor (FIRE_DRAGON, ELDER_DRAGON, ...) is DRAGON;
// baron and rift herald share the BARON bucket. Grubs (HORDE) and anything
// unrecognized return "" and never count toward participation totals.
func ObjectiveCategory(monsterType string) string {
	switch {
	case strings.Contains(monsterType, "DRAGON"):
		return model.ObjectiveDragon
	case strings.Contains(monsterType, "BARON"), strings.Contains(monsterType, "RIFTHERALD"):
		return model.ObjectiveBaron
	}
	return ""
}

// IsControlWard reports whether a wardType counts toward the control-ward
// sub-counter.
func IsControlWard(wardType string) bool {
	return wardType == "CONTROL_WARD" || wardType == "SIGHT_WARD"
}
