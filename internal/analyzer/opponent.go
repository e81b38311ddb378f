package analyzer

import (
	"math"
	"strconv"

	"github.com/lucbat/go-lol-coach/internal/riot"
)

// proximityWindowMS bounds the fallback heuristic to the laning phase.
const proximityWindowMS = 300_000

// proximityFrameCap bounds the number of frames sampled by the fallback.
const proximityFrameCap = 5

// ResolveLaneOpponent determines the analyzed participant's direct lane
// rival. Primary rule: the enemy participant sharing a non-UNKNOWN
// teamPosition. Fallback: the enemy with the smallest average positional
// distance over the first five minutes of frames. Returns 0 when neither
// rule yields a candidate; callers treat 0 as "no opponent", not an error.
func ResolveLaneOpponent(m *riot.Match, tl *riot.Timeline, participantID int) int {
	var self *riot.Participant
	for i := range m.Info.Participants {
		if m.Info.Participants[i].ParticipantID == participantID {
			self = &m.Info.Participants[i]
			break
		}
	}
	if self == nil {
		return 0
	}

	role := self.TeamPosition
	if role != "" && role != "UNKNOWN" {
		for i := range m.Info.Participants {
			opp := &m.Info.Participants[i]
			if opp.TeamID != self.TeamID && opp.TeamPosition == role {
				return opp.ParticipantID
			}
		}
	}

	return nearestByProximity(m, tl, self)
}

// nearestByProximity averages frame-by-frame Euclidean distance to each
// enemy over the sampled early-game frames and returns the closest one.
func nearestByProximity(m *riot.Match, tl *riot.Timeline, self *riot.Participant) int {
	framesToCheck := proximityFrameCap
	if n := len(tl.Info.Frames); n < framesToCheck {
		framesToCheck = n
	}

	distances := make(map[int][]float64)
	selfKey := strconv.Itoa(self.ParticipantID)

	for _, frame := range tl.Info.Frames[:framesToCheck] {
		if frame.Timestamp > proximityWindowMS {
			break
		}
		pf, ok := frame.ParticipantFrames[selfKey]
		if !ok || pf.Position == nil {
			continue
		}

		for i := range m.Info.Participants {
			opp := &m.Info.Participants[i]
			if opp.TeamID == self.TeamID {
				continue
			}
			of, ok := frame.ParticipantFrames[strconv.Itoa(opp.ParticipantID)]
			if !ok || of.Position == nil {
				continue
			}
			dx := float64(pf.Position.X - of.Position.X)
			dy := float64(pf.Position.Y - of.Position.Y)
			distances[opp.ParticipantID] = append(distances[opp.ParticipantID], math.Hypot(dx, dy))
		}
	}

	best, bestAvg := 0, math.Inf(1)
	for id, dists := range distances {
		sum := 0.0
		for _, d := range dists {
			sum += d
		}
		avg := sum / float64(len(dists))
		// Tie-break on participant id so the result is deterministic
		// regardless of map iteration order.
		if avg < bestAvg || (avg == bestAvg && id < best) {
			best, bestAvg = id, avg
		}
	}
	return best
}
