package runner

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick            int
	Phase           Phase
	Score           int
	Best            int
	Ordinary        int
	Premium         int
	Won             bool
	CharacterY      float64
	CharacterVelY   float64
	Pose            Pose
	Obstacles       int
	Coins           int
	Airplanes       int
	LastPremiumTick int
	Spawned         SpawnStats
	BackgroundX     float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.session.Ticks,
		Phase:           g.session.Phase,
		Score:           g.session.Score,
		Best:            g.session.Best,
		Ordinary:        g.session.Ordinary,
		Premium:         g.session.Premium,
		Won:             g.session.Won,
		CharacterY:      g.character.Y,
		CharacterVelY:   g.character.VelY,
		Pose:            g.character.Pose(),
		Obstacles:       len(g.lifecycle.Obstacles()),
		Coins:           len(g.lifecycle.Coins()),
		Airplanes:       len(g.lifecycle.Airplanes()),
		LastPremiumTick: g.spawner.LastPremiumTick(),
		Spawned:         g.spawner.Stats(),
		BackgroundX:     g.bg.Offset,
	}
}
