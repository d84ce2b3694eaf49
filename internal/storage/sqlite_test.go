package storage

import "testing"

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestLedgerRecordAndRetrieve(t *testing.T) {
	ledger := openLedger(t)

	runs := []Run{
		{Mode: "runner", Score: 100, Ordinary: 20, Premium: 2, Ticks: 1800},
		{Mode: "runner", Score: 50, Ordinary: 10, Ticks: 900},
		{Mode: "runner", Score: 200, Ordinary: 30, Premium: 5, Ticks: 3600},
		{Mode: "runner_goal", Score: 500, Ordinary: 47, Premium: 15, Ticks: 9000, Won: true},
	}
	for _, r := range runs {
		if _, err := ledger.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := ledger.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, r := range top {
		if r.Score != want[i] {
			t.Errorf("run %d: score %d, want %d", i, r.Score, want[i])
		}
	}
	if top[0].Premium != 5 || top[0].Ticks != 3600 || top[0].Won {
		t.Errorf("top run fields not round-tripped: %+v", top[0])
	}

	goal, err := ledger.TopRuns("runner_goal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(goal) != 1 || !goal[0].Won {
		t.Errorf("goal runs = %+v", goal)
	}
}

func TestLedgerTopRunsLimit(t *testing.T) {
	ledger := openLedger(t)

	for i := 0; i < 20; i++ {
		if _, err := ledger.RecordRun(Run{Mode: "runner", Score: i * 10}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := ledger.TopRuns("runner", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}
}

func TestLedgerBestScore(t *testing.T) {
	ledger := openLedger(t)

	best, err := ledger.BestScore("runner")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty ledger, got %d", best)
	}

	ledger.RecordRun(Run{Mode: "runner", Score: 42})
	ledger.RecordRun(Run{Mode: "runner", Score: 17})

	best, err = ledger.BestScore("runner")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Expected 42, got %d", best)
	}
}

func TestLedgerStats(t *testing.T) {
	ledger := openLedger(t)

	ledger.RecordRun(Run{Mode: "runner_goal", Score: 10, Ordinary: 5, Premium: 1, Ticks: 600})
	ledger.RecordRun(Run{Mode: "runner_goal", Score: 30, Ordinary: 7, Premium: 2, Ticks: 1200, Won: true})

	stats, err := ledger.Stats("runner_goal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	want := Stats{Mode: "runner_goal", Runs: 2, Wins: 1, Best: 30, AvgScore: 20, Ordinary: 12, Premium: 3, Ticks: 1800}
	if *stats != want {
		t.Errorf("Stats = %+v, want %+v", *stats, want)
	}

	empty, err := ledger.Stats("runner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 {
		t.Errorf("empty stats = %+v", *empty)
	}
}

func TestLedgersAreIndependent(t *testing.T) {
	a := openLedger(t)
	b := openLedger(t)

	a.RecordRun(Run{Mode: "runner", Score: 99})

	best, err := b.BestScore("runner")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("second ledger sees %d, want 0", best)
	}
}
