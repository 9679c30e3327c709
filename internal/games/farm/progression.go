package farm

import "math"

// TimeBonus returns the completion bonus: points for every full step of
// seconds left before the target time, never negative.
func TimeBonus(targetTime, elapsed, stepSeconds float64, points int) int {
	if stepSeconds <= 0 {
		return 0
	}
	steps := math.Floor((targetTime - elapsed) / stepSeconds)
	if steps <= 0 {
		return 0
	}
	return int(steps) * points
}

// checkLevelComplete awards the time bonus and schedules the next level once
// the field is empty and nothing is carried.
func (g *Game) checkLevelComplete() {
	if !g.populated || g.transitioning {
		return
	}
	if len(g.items) > 0 || g.farmer.Carrying != nil {
		return
	}

	level := g.levels.Level(g.levelIndex)
	elapsed := g.clock - g.levelStart
	scoring := g.cfg.Scoring

	g.bonus = TimeBonus(level.TargetTime, elapsed, scoring.BonusStepSeconds, scoring.BonusPoints)
	g.score += g.bonus
	g.transitioning = true
	g.timers.Schedule(g.clock+g.cfg.Timing.TransitionDelay, timerAdvanceLevel, 0)

	g.logger().Info("level cleared",
		"level", level.Number(),
		"elapsed", elapsed,
		"bonus", g.bonus,
		"score", g.score)
}

// advanceLevel moves to the next level, or ends a finished campaign.
func (g *Game) advanceLevel() {
	g.transitioning = false
	g.populated = false

	if g.mode == ModeCampaign && g.levelIndex+1 >= g.levels.Count() {
		g.won = true
		g.logger().Info("campaign won", "score", g.score)
		return
	}

	g.levelIndex++
	g.startLevel()
}
