package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/puku-runner/internal/core"
	"github.com/vovakirdan/puku-runner/internal/storage"
)

// stubGame waits on a start screen, plays for a fixed number of steps, then ends.
type stubGame struct {
	length  int
	steps   int
	playing bool
	over    bool
	ducks   int
	calls   int // Step calls, including idle ones
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.steps, g.playing, g.over = 0, false, false }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.calls++
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if !g.playing {
		if in.Has(core.ActionConfirm) {
			g.playing, g.over, g.steps = true, false, 0
		}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionDuck) {
		g.ducks++
	}
	g.steps++
	if g.steps >= g.length {
		g.playing, g.over = false, true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.over, Ticks: g.steps, Idle: !g.playing}
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Ledger) {
	t.Helper()
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })
	return NewModel(g, ledger, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}), ledger
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelWaitsWithoutTicking(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{length: 3})

	if m.Init() != nil {
		t.Error("Init should not schedule ticks on the start screen")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil || m.ticking {
		t.Error("a stray tick should not start the loop")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil || !m.ticking {
		t.Fatal("confirm should start the tick loop")
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	g := &stubGame{length: 3}
	m, ledger := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if !g.over {
		t.Fatal("stub game should be over")
	}
	if m.ticking {
		t.Error("ticking should stop at game over")
	}

	runs, err := ledger.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 3 || runs[0].Ticks != 3 {
		t.Errorf("runs = %+v", runs)
	}

	// Further ticks must not record the same run again
	m, _ = update(t, m, TickMsg{})
	if runs, _ := ledger.TopRuns("stub", 10); len(runs) != 1 {
		t.Errorf("run recorded %d times", len(runs))
	}

	if !strings.Contains(m.View(), "runs 1") {
		t.Error("footer should show the ledger summary")
	}
}

func TestModelDuckHoldReachesGame(t *testing.T) {
	g := &stubGame{length: 100}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 50; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if g.ducks != duckHoldPress {
		t.Errorf("game saw duck for %d ticks, want %d", g.ducks, duckHoldPress)
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, &stubGame{length: 10})
			m, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestModelRunsView(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{length: 1})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "RUNS THIS SESSION") {
		t.Fatal("tab should open the runs view on the start screen")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "RUNS THIS SESSION") {
		t.Error("esc should close the runs view")
	}
	if m.View() == "" {
		t.Error("esc in the runs view should not quit")
	}
}

func TestModelIgnoresUnboundKeyWhileWaiting(t *testing.T) {
	g := &stubGame{length: 3}
	m, _ := newTestModel(t, g)

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil || m.ticking || g.calls != 0 {
		t.Errorf("unbound key reached the game: calls=%d ticking=%v", g.calls, m.ticking)
	}

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if g.calls != 1 {
		t.Errorf("confirm should be delivered once, got %d calls", g.calls)
	}
}

func TestModelRunsViewQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{length: 1})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q in the runs view should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelLoadsLedgerSummary(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer ledger.Close()
	ledger.RecordRun(storage.Run{Mode: "stub", Score: 7})
	ledger.RecordRun(storage.Run{Mode: "stub", Score: 4})

	m := NewModel(&stubGame{length: 1}, ledger, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if !strings.Contains(m.View(), "runs 2  best 7") {
		t.Errorf("footer should show earlier runs, got %q", m.footer())
	}
}

func TestLedgerViewUsesTickRate(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer ledger.Close()
	ledger.RecordRun(storage.Run{Mode: "stub", Score: 9, Ticks: 1800})

	out := NewLedgerView(ledger, "stub", "Stub", 30, 80, 24).View()
	if !strings.Contains(out, "1:00") || strings.Contains(out, "0:30") {
		t.Errorf("1800 ticks at 30 per second should read 1:00:\n%s", out)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0:00"},
		{3600, 60, "1:00"},
		{3600, 30, "2:00"},
		{5430, 60, "1:30"},
		{90, 0, "1:30"},
	}

	for _, tt := range tests {
		if got := formatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("formatTicks(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}
