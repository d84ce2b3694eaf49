package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/puku-runner/internal/storage"
)

const maxRuns = 50

// LedgerKeyMap defines key bindings for the runs screen.
type LedgerKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k LedgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k LedgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back, k.Quit}}
}

// DefaultLedgerKeyMap returns the default runs screen bindings.
func DefaultLedgerKeyMap() LedgerKeyMap {
	return LedgerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LedgerView shows the runs finished during this process as a table.
// It is embedded in Model and shown over the start and game over screens.
type LedgerView struct {
	mode     string
	title    string
	ledger   *storage.Ledger
	runs     []storage.Run
	stats    *storage.Stats
	tickRate int // Ticks per second, for play times
	table    table.Model
	help     help.Model
	keys     LedgerKeyMap
	width    int
	height   int
	closing  bool
	quitting bool
}

// NewLedgerView creates a runs view for one game mode.
func NewLedgerView(ledger *storage.Ledger, mode, title string, tickRate, width, height int) LedgerView {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	v := LedgerView{
		mode:     mode,
		title:    title,
		ledger:   ledger,
		tickRate: max(tickRate, 1),
		keys:     DefaultLedgerKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	v.table = v.createTable()
	v.Reload()
	return v
}

// createTable creates a new table with appropriate columns.
func (v *LedgerView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Coins", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Result", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-10, 3)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload reads the runs from the ledger.
func (v *LedgerView) Reload() {
	v.runs, v.stats = nil, nil
	if v.ledger != nil {
		if runs, err := v.ledger.TopRuns(v.mode, maxRuns); err == nil {
			v.runs = runs
		}
		if stats, err := v.ledger.Stats(v.mode); err == nil {
			v.stats = stats
		}
	}
	v.updateTableRows()
	v.closing = false
}

// updateTableRows updates the table with current runs.
func (v *LedgerView) updateTableRows() {
	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		result := "crash"
		if r.Won {
			result = "win"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d/%d", r.Ordinary, r.Premium),
			formatTicks(r.Ticks, v.tickRate),
			result,
		}
	}
	v.table.SetRows(rows)

	// Reset cursor to top
	v.table.GotoTop()
}

// Resize adapts the view to a new terminal size.
func (v *LedgerView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.table = v.createTable()
	v.updateTableRows()
}

// Update handles a key while the view is shown.
func (v LedgerView) Update(msg tea.KeyMsg) (LedgerView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		v.quitting = true
		return v, tea.Quit
	case key.Matches(msg, v.keys.Back):
		v.closing = true
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// Closing reports whether the player asked to leave the view.
func (v LedgerView) Closing() bool {
	return v.closing
}

// Quitting reports whether the player asked to leave the program.
func (v LedgerView) Quitting() bool {
	return v.quitting
}

// View renders the runs screen.
func (v LedgerView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("RUNS THIS SESSION - %s", v.title), v.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(v.width, lipgloss.Center, tableStyle.Render(v.renderTableContent())))
	b.WriteString("\n")

	if v.stats != nil && v.stats.Runs > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		line := fmt.Sprintf("%d runs  best %d  avg %.1f  coins %d/%d  played %s",
			v.stats.Runs, v.stats.Best, v.stats.AvgScore, v.stats.Ordinary, v.stats.Premium, formatTicks(v.stats.Ticks, v.tickRate))
		b.WriteString(statsStyle.Render(centerText(line, v.width)))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (v LedgerView) renderTableContent() string {
	if len(v.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs finished yet.\nRuns are kept until the program exits.")
	}

	return v.table.View()
}

// formatTicks renders a tick count as m:ss at the given tick rate.
func formatTicks(ticks, rate int) string {
	secs := ticks / max(rate, 1)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
