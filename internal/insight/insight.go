// Package insight derives heuristic coaching observations from a finished
// TimelineAnalysis and the match outcome. The rule set is a fixed, ordered
// table of independent predicates: any number of rules may fire, and output
// order follows table declaration order, not severity.
package insight

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lucbat/go-lol-coach/internal/model"
)

// ruleContext carries the analysis plus derived values shared by rules.
type ruleContext struct {
	a      *model.TimelineAnalysis
	result string

	role         string
	durationMin  float64
	earlyGoldAvg float64
	midGoldAvg   float64

	totalKills   int
	totalDeaths  int
	totalAssists int
}

// rule is one (name, predicate+template) entry. eval returns zero or more
// fully formatted output lines; detail lines carry their own indentation.
type rule struct {
	name string
	eval func(c *ruleContext) []string
}

func line(format string, args ...interface{}) []string {
	return []string{fmt.Sprintf("  - "+format, args...)}
}

// rules is evaluated in declaration order.
var rules = []rule{
	{name: "laning-outcome", eval: laningOutcome},
	{name: "gold-differential", eval: goldDifferential},
	{name: "mid-game-transition", eval: midGameTransition},
	{name: "late-game-deaths", eval: lateGameDeaths},
	{name: "passivity", eval: passivity},
	{name: "objective-participation", eval: objectiveParticipation},
	{name: "damage-output", eval: damageOutput},
	{name: "cs-per-min", eval: csPerMin},
	{name: "kill-participation", eval: killParticipation},
	{name: "damage-efficiency", eval: damageEfficiency},
	{name: "multi-kills", eval: multiKills},
	{name: "deaths-before-objectives", eval: deathsBeforeObjectives},
	{name: "vision", eval: vision},
}

// Generate evaluates the full rule table and returns the ordered output
// lines. Result must be VICTORY or DEFEAT.
func Generate(a *model.TimelineAnalysis, result string) []string {
	c := &ruleContext{
		a:            a,
		result:       result,
		role:         a.Role,
		durationMin:  a.GameDurationMin(),
		earlyGoldAvg: a.EarlyGame.AvgGoldDiff(),
		midGoldAvg:   a.MidGame.AvgGoldDiff(),
		totalKills:   a.TotalKills(),
		totalDeaths:  a.TotalDeaths(),
		totalAssists: a.TotalAssists(),
	}

	var out []string
	for _, r := range rules {
		out = append(out, r.eval(c)...)
	}
	return out
}

func laningOutcome(c *ruleContext) []string {
	switch {
	case c.a.EarlyGame.Deaths == 0 && c.result == model.ResultDefeat:
		return line("Strong laning but couldn't translate to victory - team diff or mid/late mistakes")
	case c.a.EarlyGame.Deaths >= 2 && c.result == model.ResultVictory:
		return line("Recovered from rough laning - good mental and scaling")
	case c.a.EarlyGame.Deaths >= 3:
		return line("Rough laning phase - need to respect enemy pressure and play safer early")
	}
	return nil
}

func goldDifferential(c *ruleContext) []string {
	switch {
	case c.earlyGoldAvg > 500 && c.totalKills < 5:
		return line("Strong laning but low kill participation - farm focus is good but may need more map presence")
	case c.earlyGoldAvg < -800:
		return line("Significant early deficit - consider adjusting runes, starting items, or trading patterns")
	}
	return nil
}

func midGameTransition(c *ruleContext) []string {
	switch {
	case c.earlyGoldAvg > 300 && c.midGoldAvg < 0:
		return line("Lost advantage transitioning to mid game - work on maintaining leads through objectives")
	case c.earlyGoldAvg < -300 && c.midGoldAvg > 0:
		return line("Great comeback in mid game - good scaling and teamfight execution")
	}
	return nil
}

func lateGameDeaths(c *ruleContext) []string {
	if c.a.LateGame.Deaths >= 3 {
		return line("Late game positioning issues - crucial deaths in decisive moments")
	}
	return nil
}

func passivity(c *ruleContext) []string {
	if c.totalDeaths <= 3 && c.result == model.ResultDefeat && c.totalKills+c.totalAssists < 10 {
		return line("Played safe but passive - may need more proactive plays to impact the map")
	}
	return nil
}

func objectiveParticipation(c *ruleContext) []string {
	participation := c.a.DragonsParticipated + c.a.BaronsParticipated
	switch {
	case participation < 2 && c.durationMin > 20:
		return line("Low objective participation - need to be present for dragons and barons")
	case participation >= 4:
		return line("Strong objective participation - good map awareness and priority")
	}
	return nil
}

func damageOutput(c *ruleContext) []string {
	damage := c.a.LateGame.DamageToChampions
	switch {
	case isCarryRole(c.role) && damage < 15000 && c.durationMin > 25:
		return line("Low damage output for carry role - work on teamfight positioning and target selection")
	case (c.role == "TOP" || c.role == "JUNGLE") && damage < 10000 && c.durationMin > 25:
		return line("Low damage output - consider more aggressive trades or teamfight flanks")
	}
	return nil
}

func csPerMin(c *ruleContext) []string {
	if c.role == "UTILITY" || c.role == "JUNGLE" {
		return nil
	}
	if c.durationMin <= 0 {
		return nil
	}
	perMin := float64(c.a.LateGame.CS) / c.durationMin
	switch {
	case perMin < 5:
		return line("Low CS/min (%.1f) - focus on last-hitting and wave management", perMin)
	case perMin >= 8:
		return line("Excellent CS/min (%.1f) - strong farming fundamentals", perMin)
	}
	return nil
}

func killParticipation(c *ruleContext) []string {
	// Top lane can be an island.
	if c.role == "TOP" {
		return nil
	}
	if c.totalKills+c.totalAssists < 5 && c.durationMin > 20 {
		return line("Low kill participation - work on roaming and joining team fights")
	}
	return nil
}

func damageEfficiency(c *ruleContext) []string {
	taken := c.a.LateGame.DamageTaken
	if taken <= 0 {
		return nil
	}
	dealt := c.a.LateGame.DamageToChampions
	ratio := float64(dealt) / float64(taken)
	switch {
	case isCarryRole(c.role) && ratio < 0.8:
		return line("Taking too much damage (%s) vs dealing (%s) - work on positioning",
			humanize.Comma(int64(taken)), humanize.Comma(int64(dealt)))
	case isCarryRole(c.role) && ratio > 1.5:
		return line("Excellent damage efficiency - dealing %.1fx more than taken", ratio)
	}
	return nil
}

func multiKills(c *ruleContext) []string {
	switch {
	case c.a.Pentakills > 0:
		return line("PENTAKILL achieved - game-changing performance")
	case c.a.Quadrakills > 0 || c.a.Triplekills >= 2:
		return line("Strong teamfight execution - multiple multi-kills")
	}
	return nil
}

func deathsBeforeObjectives(c *ruleContext) []string {
	dbo := c.a.DeathsBeforeObjectives
	if len(dbo) == 0 {
		return nil
	}
	out := line("CRITICAL: %d death(s) before objectives", len(dbo))
	shown := dbo
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, d := range shown {
		out = append(out, fmt.Sprintf("    Died %s (%ds before %s at %s)",
			clock(d.DeathTime), int(d.SecondsBefore), d.ObjectiveType, clock(d.ObjectiveTime)))
	}
	return out
}

// visionThresholds are role-specific base values; placement thresholds
// scale linearly with game duration, clear thresholds do not.
type visionThresholds struct {
	wardLow, wardHigh int
	controlLow        int
	killLow, killHigh int
}

func thresholdsFor(role string) visionThresholds {
	switch role {
	case "UTILITY":
		return visionThresholds{wardLow: 25, wardHigh: 35, controlLow: 5, killLow: 5, killHigh: 15}
	case "JUNGLE":
		return visionThresholds{wardLow: 15, wardHigh: 35, controlLow: 4, killLow: 3, killHigh: 10}
	default:
		return visionThresholds{wardLow: 10, wardHigh: 25, controlLow: 3, killLow: 2, killHigh: 8}
	}
}

func vision(c *ruleContext) []string {
	t := thresholdsFor(c.role)

	// Scale placement expectations to game length, anchored at 30 minutes.
	if c.durationMin > 0 {
		scale := c.durationMin / 30
		t.wardLow = int(float64(t.wardLow) * scale)
		t.wardHigh = int(float64(t.wardHigh) * scale)
		t.controlLow = int(float64(t.controlLow) * scale)
	}
	if t.controlLow < 2 {
		t.controlLow = 2
	}

	placed := c.a.TotalWardsPlaced()
	killed := c.a.TotalWardsKilled()
	control := c.a.TotalControlWards()

	var out []string
	switch {
	case placed < t.wardLow:
		out = append(out, line("Low ward count (%d) - need to prioritize vision control for better map awareness", placed)...)
		if c.role == "UTILITY" {
			out = append(out, "    WARNING: As support, vision is your PRIMARY responsibility")
		}
	case placed > t.wardHigh:
		out = append(out, line("Excellent vision game (%d wards) - keeping team informed and safe", placed)...)
	}

	switch {
	case killed > t.killHigh:
		out = append(out, line("Great vision denial (%d cleared) - actively clearing enemy wards", killed)...)
	case killed < t.killLow && (c.role == "UTILITY" || c.role == "JUNGLE"):
		out = append(out, line("Low ward clears (%d) - use your sweeper more to deny enemy vision", killed)...)
	}

	switch {
	case control < t.controlLow:
		out = append(out, line("Need more control wards (%d) - crucial for objective control and sweeping", control)...)
	case control >= t.controlLow*2:
		out = append(out, line("Strong control ward usage (%d) - good objective setup", control)...)
	}
	return out
}

func isCarryRole(role string) bool {
	return role == "MIDDLE" || role == "BOTTOM"
}

// clock renders seconds as M:SS.
func clock(sec float64) string {
	return fmt.Sprintf("%d:%02d", int(sec)/60, int(sec)%60)
}
