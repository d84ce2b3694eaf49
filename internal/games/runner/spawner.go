package runner

import (
	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/config"
)

// Rand is the random source used by the spawner.
// *math/rand.Rand satisfies it; tests can inject scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// uniform draws an integer uniformly from the inclusive range.
func uniform(rng Rand, r config.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// spawnTimer fires after a random number of ticks and then redraws its threshold.
type spawnTimer struct {
	counter   int
	threshold int
	interval  config.IntRange
}

// reset zeroes the counter and draws a fresh threshold.
func (t *spawnTimer) reset(rng Rand) {
	t.counter = 0
	t.threshold = uniform(rng, t.interval)
}

// tick advances the counter and reports whether the timer fired.
func (t *spawnTimer) tick(rng Rand) bool {
	t.counter++
	if t.counter < t.threshold {
		return false
	}
	t.reset(rng)
	return true
}

// SpawnBatch holds the entities created during one tick.
type SpawnBatch struct {
	Obstacles []*Obstacle
	Coins     []*Coin
	Airplanes []*Airplane
}

// Empty reports whether nothing was spawned.
func (b SpawnBatch) Empty() bool {
	return len(b.Obstacles) == 0 && len(b.Coins) == 0 && len(b.Airplanes) == 0
}

// SpawnStats counts spawns since the last reset.
type SpawnStats struct {
	Obstacles int
	Ordinary  int
	Premium   int
	Airplanes int
}

// Coins returns the total number of coins spawned.
func (s SpawnStats) Coins() int {
	return s.Ordinary + s.Premium
}

// Spawner creates obstacles, coins and airplanes on independent random timers.
type Spawner struct {
	rng   Rand
	cfg   *config.RunnerConfig
	sheet *assets.Sheet

	obstacle spawnTimer
	coin     spawnTimer
	airplane spawnTimer

	lastPremiumTick int // Tick of the last premium selection (0 = session start)
	stats           SpawnStats
}

// NewSpawner creates a spawner with freshly drawn thresholds.
func NewSpawner(rng Rand, cfg *config.RunnerConfig, sheet *assets.Sheet) *Spawner {
	s := &Spawner{
		rng:      rng,
		cfg:      cfg,
		sheet:    sheet,
		obstacle: spawnTimer{interval: cfg.Spawn.ObstacleInterval},
		coin:     spawnTimer{interval: cfg.Spawn.CoinInterval},
		airplane: spawnTimer{interval: cfg.Spawn.AirplaneInterval},
	}
	s.Reset()
	return s
}

// Reset zeroes all counters and redraws every threshold.
func (s *Spawner) Reset() {
	s.obstacle.reset(s.rng)
	s.coin.reset(s.rng)
	s.airplane.reset(s.rng)
	s.lastPremiumTick = 0
	s.stats = SpawnStats{}
}

// Stats returns spawn counts since the last reset.
func (s *Spawner) Stats() SpawnStats {
	return s.stats
}

// LastPremiumTick returns the tick of the most recent premium selection.
func (s *Spawner) LastPremiumTick() int {
	return s.lastPremiumTick
}

// Tick advances all timers; tick is the session tick number (starting at 1).
func (s *Spawner) Tick(tick int) SpawnBatch {
	var batch SpawnBatch

	if s.obstacle.tick(s.rng) {
		batch.Obstacles = append(batch.Obstacles, s.spawnObstacle())
	}
	if s.coin.tick(s.rng) {
		batch.Coins = append(batch.Coins, s.spawnCoin(tick))
	}
	if s.airplane.tick(s.rng) {
		batch.Airplanes = append(batch.Airplanes, s.spawnAirplane())
	}

	return batch
}

// spawnObstacle places a random obstacle variant just past the right edge.
func (s *Spawner) spawnObstacle() *Obstacle {
	variant := s.rng.Intn(len(s.sheet.Obstacles))
	sprite := s.sheet.Obstacles[variant]

	s.stats.Obstacles++
	return &Obstacle{
		X:       s.cfg.World.Width + float64(uniform(s.rng, s.cfg.Spawn.ObstacleOffset)),
		Y:       s.cfg.World.Ground - sprite.Height,
		W:       sprite.Width,
		H:       sprite.Height,
		Variant: variant,
		speed:   s.cfg.Physics.GroundSpeed,
	}
}

// spawnCoin places a coin in the band above the ground, deciding its tier.
func (s *Spawner) spawnCoin(tick int) *Coin {
	x := s.cfg.World.Width + float64(uniform(s.rng, s.cfg.Spawn.CoinOffset))
	y := s.cfg.World.Ground - float64(uniform(s.rng, s.cfg.Spawn.CoinBand))

	tier := TierOrdinary
	if tick-s.lastPremiumTick >= s.cfg.Spawn.PremiumCooldown {
		if s.rng.Float64() < s.cfg.Spawn.PremiumChance {
			tier = TierPremium
			s.lastPremiumTick = tick
		}
	}

	sprite := s.sheet.Coins.Ordinary
	value := s.cfg.Scoring.OrdinaryValue
	if tier == TierPremium {
		sprite = s.sheet.Coins.Premium
		value = s.cfg.Scoring.PremiumValue
		s.stats.Premium++
	} else {
		s.stats.Ordinary++
	}

	return &Coin{
		X:     x,
		Y:     y,
		W:     sprite.Width,
		H:     sprite.Height,
		Tier:  tier,
		Value: value,
		speed: s.cfg.Physics.GroundSpeed,
	}
}

// spawnAirplane places a banner plane at a random altitude near the top.
func (s *Spawner) spawnAirplane() *Airplane {
	s.stats.Airplanes++
	return &Airplane{
		X:     s.cfg.World.Width + float64(s.cfg.Spawn.AirplaneOffset),
		Y:     float64(uniform(s.rng, s.cfg.Spawn.AirplaneAltitude)),
		W:     s.sheet.Airplane.Width,
		H:     s.sheet.Airplane.Height,
		speed: s.cfg.Physics.AirplaneSpeed,
	}
}
