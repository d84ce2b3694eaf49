package runner

// Lifecycle owns the live obstacles, coins and airplanes.
// No entity is ever shared between collections.
type Lifecycle struct {
	obstacles []*Obstacle
	coins     []*Coin
	airplanes []*Airplane
}

// NewLifecycle creates an empty lifecycle manager.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		obstacles: make([]*Obstacle, 0, 8),
		coins:     make([]*Coin, 0, 16),
		airplanes: make([]*Airplane, 0, 2),
	}
}

// Add takes ownership of newly spawned entities.
func (l *Lifecycle) Add(batch SpawnBatch) {
	l.obstacles = append(l.obstacles, batch.Obstacles...)
	l.coins = append(l.coins, batch.Coins...)
	l.airplanes = append(l.airplanes, batch.Airplanes...)
}

// Advance moves every entity by one tick.
func (l *Lifecycle) Advance() {
	advanceAll(l.obstacles)
	advanceAll(l.coins)
	advanceAll(l.airplanes)
}

// Cull removes off-screen entities and collected coins.
// Returns the number of entities removed.
func (l *Lifecycle) Cull() int {
	before := l.Len()

	l.obstacles = retain(l.obstacles, func(o *Obstacle) bool { return !o.OffScreen() })
	l.coins = retain(l.coins, func(c *Coin) bool { return !c.OffScreen() && !c.Collected })
	l.airplanes = retain(l.airplanes, func(a *Airplane) bool { return !a.OffScreen() })

	return before - l.Len()
}

// Clear drops every entity.
func (l *Lifecycle) Clear() {
	clear(l.obstacles)
	clear(l.coins)
	clear(l.airplanes)
	l.obstacles = l.obstacles[:0]
	l.coins = l.coins[:0]
	l.airplanes = l.airplanes[:0]
}

// Len returns the total number of live entities.
func (l *Lifecycle) Len() int {
	return len(l.obstacles) + len(l.coins) + len(l.airplanes)
}

// Obstacles returns the live obstacles.
func (l *Lifecycle) Obstacles() []*Obstacle { return l.obstacles }

// Coins returns the live coins.
func (l *Lifecycle) Coins() []*Coin { return l.coins }

// Airplanes returns the live airplanes.
func (l *Lifecycle) Airplanes() []*Airplane { return l.airplanes }

// advanceAll moves each entity once.
func advanceAll[E Entity](entities []E) {
	for _, e := range entities {
		e.Advance()
	}
}

// retain filters the slice in place, visiting each element exactly once.
// Dropped tail slots are zeroed so removed entities can be collected.
func retain[E Entity](entities []E, keep func(E) bool) []E {
	kept := entities[:0]
	for _, e := range entities {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}
