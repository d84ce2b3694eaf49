package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/puku-runner/internal/core"
	"github.com/vovakirdan/puku-runner/internal/registry"
	"github.com/vovakirdan/puku-runner/internal/storage"
)

// footerRows is the number of rows below the game screen.
const footerRows = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Ledger
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runs       LedgerView
	showRuns   bool
	ticking    bool // A tick is scheduled; false while the game waits for a key
	recorded   bool // Whether the current game over has been written to the ledger
	ledgerRuns int
	ledgerBest int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// ledger and logger may be nil.
func NewModel(game registry.Game, ledger *storage.Ledger, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerRows, 1)),
		ledger:     ledger,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		runs:       NewLedgerView(ledger, game.ID(), game.Title(), cfg.TickRate, cfg.ScreenW, cfg.ScreenH),
	}
	m.loadLedgerSummary()
	return m
}

// loadLedgerSummary reads the footer's run count and best score from the ledger.
func (m *Model) loadLedgerSummary() {
	if m.ledger == nil {
		return
	}
	stats, err := m.ledger.Stats(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read ledger", "error", err)
		return
	}
	m.ledgerRuns, m.ledgerBest = stats.Runs, stats.Best
}

// Init starts the tick loop unless the game is waiting for a key.
func (m Model) Init() tea.Cmd {
	if m.gameState.Idle {
		return nil
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.showRuns {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		switch {
		case m.runs.Quitting():
			m.logger.Info("quit", "game", m.game.ID())
			m.quitting = true
		case m.runs.Closing():
			m.showRuns = false
		}
		return m, cmd
	}

	if m.gameState.Idle && msg.String() == "tab" {
		m.runs.Reload()
		m.showRuns = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// No tick is running, so the key is delivered right away.
	// Keys without an action leave the waiting screen alone.
	if !m.ticking {
		m.keys.Release()
		if m.inputFrame.Empty() {
			return m, nil
		}
		return m.step()
	}

	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	m.runs.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	m.ticking = false
	m.keys.Advance(&m.inputFrame)
	return m.step()
}

// step runs one game step with the accumulated input and schedules the next tick.
func (m Model) step() (tea.Model, tea.Cmd) {
	wasIdle := m.gameState.Idle

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if result.Quit {
		m.logger.Info("quit", "game", m.game.ID())
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case wasIdle && !m.gameState.Idle:
		m.logger.Info("session started", "game", m.game.ID())
		m.recorded = false
	case m.gameState.GameOver && !m.recorded:
		m.recordRun()
	}

	if m.gameState.Idle {
		m.keys.Release()
		return m, nil
	}

	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// recordRun writes the finished session to the ledger (once per game over).
func (m *Model) recordRun() {
	m.recorded = true
	st := m.gameState

	m.logger.Info("session ended",
		"game", m.game.ID(),
		"score", st.Score,
		"best", st.Best,
		"ordinary", st.Ordinary,
		"premium", st.Premium,
		"ticks", st.Ticks,
		"won", st.Won,
	)

	if m.ledger == nil {
		return
	}
	_, err := m.ledger.RecordRun(storage.Run{
		Mode:     m.game.ID(),
		Score:    st.Score,
		Ordinary: st.Ordinary,
		Premium:  st.Premium,
		Ticks:    st.Ticks,
		Won:      st.Won,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.ledgerRuns++

	best, err := m.ledger.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read ledger", "error", err)
		return
	}
	m.ledgerBest = best
	m.logger.Debug("run recorded", "runs", m.ledgerRuns, "best", best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRuns {
		return m.runs.View()
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the help line and ledger summary.
func (m Model) footer() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	line := m.help.View(m.keys.Keys())

	if m.ledgerRuns > 0 {
		line += fmt.Sprintf("  •  runs %d  best %d", m.ledgerRuns, m.ledgerBest)
	}

	return helpStyle.Render(line)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, ledger *storage.Ledger, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, ledger, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
