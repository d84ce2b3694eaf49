package runner

import "testing"

func TestCullRemovesOffScreenAndCollected(t *testing.T) {
	l := NewLifecycle()
	l.Add(SpawnBatch{
		Obstacles: []*Obstacle{
			{X: -41, W: 40}, // fully gone
			{X: -40, W: 40}, // right edge exactly at 0, still visible
			{X: 300, W: 60},
		},
		Coins: []*Coin{
			{X: 200, W: 30, Collected: true},
			{X: 250, W: 30},
			{X: -31, W: 30},
		},
		Airplanes: []*Airplane{
			{X: -301, W: 300},
			{X: 10, W: 300},
		},
	})

	removed := l.Cull()

	if removed != 4 {
		t.Errorf("Cull removed %d, want 4", removed)
	}
	if len(l.Obstacles()) != 2 || len(l.Coins()) != 1 || len(l.Airplanes()) != 1 {
		t.Errorf("after cull: %d obstacles, %d coins, %d airplanes",
			len(l.Obstacles()), len(l.Coins()), len(l.Airplanes()))
	}
	if l.Coins()[0].X != 250 {
		t.Errorf("wrong coin kept: x=%v", l.Coins()[0].X)
	}
}

func TestDespawnCompleteness(t *testing.T) {
	l := NewLifecycle()
	o := &Obstacle{X: 900, W: 40, speed: 5}
	l.Add(SpawnBatch{Obstacles: []*Obstacle{o}})

	// x goes 900 -> -45 after 189 ticks; x+w < 0 first holds at x = -45
	ticks := 0
	for l.Len() > 0 {
		l.Advance()
		l.Cull()
		ticks++
		if ticks > 1000 {
			t.Fatal("obstacle never despawned")
		}
		if l.Len() > 0 && o.OffScreen() {
			t.Fatalf("tick %d: off-screen obstacle still live", ticks)
		}
	}

	if ticks != 189 {
		t.Errorf("despawned after %d ticks, want 189", ticks)
	}
}

func TestAdvanceUsesEntitySpeed(t *testing.T) {
	l := NewLifecycle()
	o := &Obstacle{X: 100, W: 10, speed: 5}
	c := &Coin{X: 100, W: 10, speed: 5}
	a := &Airplane{X: 100, W: 10, speed: 3}
	l.Add(SpawnBatch{Obstacles: []*Obstacle{o}, Coins: []*Coin{c}, Airplanes: []*Airplane{a}})

	l.Advance()

	if o.X != 95 || c.X != 95 || a.X != 97 {
		t.Errorf("positions after one tick: obstacle %v, coin %v, airplane %v", o.X, c.X, a.X)
	}
}

func TestLifecycleClear(t *testing.T) {
	l := NewLifecycle()
	l.Add(SpawnBatch{
		Obstacles: []*Obstacle{{X: 1}},
		Coins:     []*Coin{{X: 1}, {X: 2}},
		Airplanes: []*Airplane{{X: 1}},
	})
	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len = %d after Clear", l.Len())
	}
}
