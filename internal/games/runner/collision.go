package runner

import "github.com/vovakirdan/puku-runner/internal/config"

// CollisionOutcome is what one tick of collision resolution produced.
type CollisionOutcome struct {
	Crashed  bool // The character touched an obstacle
	Points   int  // Score earned from coins and airplane bonuses
	Ordinary int  // Ordinary coins collected
	Premium  int  // Premium coins collected
	Passed   int  // Airplanes that passed the character
}

// resolveCollisions tests the character against every live entity.
// Classes are evaluated in order obstacle, coin, airplane; a crash stops evaluation.
// Coins are marked collected here and removed by the next Cull.
func resolveCollisions(c *Character, l *Lifecycle, scoring config.RunnerScoring) CollisionOutcome {
	var out CollisionOutcome
	box := c.Rect()

	for _, o := range l.Obstacles() {
		if box.Intersects(o.Bounds()) {
			out.Crashed = true
			return out
		}
	}

	for _, coin := range l.Coins() {
		if coin.Collected || !box.Intersects(coin.Bounds()) {
			continue
		}
		coin.Collected = true
		out.Points += coin.Value
		if coin.Tier == TierPremium {
			out.Premium++
		} else {
			out.Ordinary++
		}
	}

	for _, a := range l.Airplanes() {
		if a.Passed || a.X >= c.X {
			continue
		}
		a.Passed = true
		out.Points += scoring.AirplaneBonus
		out.Passed++
	}

	return out
}
