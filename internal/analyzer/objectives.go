package analyzer

import (
	"strings"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// Seeded spawn times and respawn intervals, in seconds.
const (
	firstDragonSpawnSec = 300
	grubsSpawnSec       = 480
	baronSpawnSec       = 1200
	dragonRespawnSec    = 300
	baronRespawnSec     = 360
	deathWindowSec      = 120
)

// SeedObjectives returns the unconditional pre-pass spawn records: first
// dragon at 5:00, grubs at 8:00, and baron at 20:00 only when the match
// lasted that long.
func SeedObjectives(gameDuration int) []model.ObjectiveSpawn {
	spawns := []model.ObjectiveSpawn{
		{Type: model.ObjectiveDragon, SpawnTime: firstDragonSpawnSec},
		{Type: model.ObjectiveGrubs, SpawnTime: grubsSpawnSec},
	}
	if gameDuration >= baronSpawnSec {
		spawns = append(spawns, model.ObjectiveSpawn{Type: model.ObjectiveBaron, SpawnTime: baronSpawnSec})
	}
	return spawns
}

// SuccessorSpawn predicts the next spawn generated by an elite-monster kill:
// dragons respawn 5 minutes after a kill, baron 6 minutes. Heralds and grubs
// do not respawn.
func SuccessorSpawn(monsterType string, killSec float64) (model.ObjectiveSpawn, bool) {
	switch {
	case strings.Contains(monsterType, "DRAGON"):
		return model.ObjectiveSpawn{Type: model.ObjectiveDragon, SpawnTime: killSec + dragonRespawnSec}, true
	case strings.Contains(monsterType, "BARON"):
		return model.ObjectiveSpawn{Type: model.ObjectiveBaron, SpawnTime: killSec + baronRespawnSec}, true
	}
	return model.ObjectiveSpawn{}, false
}

// CorrelateDeaths pairs each death with the first objective in list order
// whose effective time (kill time when known, else spawn time) falls within
// the two minutes after the death. At most one correlation per death.
//
// The match is first-in-list-order, not chronologically nearest: the list
// holds seeded spawns first, then kill-generated spawns in event order, and
// that ordering decides which objective a death is attributed to when two
// qualify.
func CorrelateDeaths(deathTimes []float64, objectives []model.ObjectiveSpawn) []model.DeathBeforeObjective {
	var out []model.DeathBeforeObjective
	for _, death := range deathTimes {
		for _, obj := range objectives {
			delta := obj.EffectiveTime() - death
			if delta > 0 && delta <= deathWindowSec {
				out = append(out, model.DeathBeforeObjective{
					DeathTime:     death,
					ObjectiveType: obj.Type,
					ObjectiveTime: obj.EffectiveTime(),
					SecondsBefore: delta,
				})
				break
			}
		}
	}
	return out
}
