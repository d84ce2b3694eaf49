package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/puku-runner/internal/core"
)

// Duck hold windows in ticks. Terminals report key presses and auto-repeats
// but never releases, so duck stays held for a while after each press.
const (
	duckHoldPress  = 30 // Covers the keyboard's initial auto-repeat delay
	duckHoldRepeat = 8  // Covers the gap between auto-repeats
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Jump      key.Binding
	Duck      key.Binding
	Confirm   key.Binding
	Pause     key.Binding
	Ledger    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Pause, k.Ledger, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Confirm},
		{k.Pause, k.Ledger, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓", "duck"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Ledger: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// It also emulates a held duck key from presses and auto-repeats.
type KeyMapper struct {
	keys     KeyMap
	duckHold int // Ticks the duck key still counts as held
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key asks to close the program immediately.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.keys.ForceQuit) {
		return true
	}

	if key.Matches(msg, km.keys.Duck) {
		if km.duckHold > 0 {
			km.duckHold = core.Max(km.duckHold, duckHoldRepeat)
		} else {
			km.duckHold = duckHoldPress
		}
		frame.Set(core.ActionDuck)
		return false
	}

	// Any other key means the duck key is no longer down
	km.duckHold = 0

	switch {
	case key.Matches(msg, km.keys.Quit):
		frame.Set(core.ActionQuit)
	case key.Matches(msg, km.keys.Pause):
		frame.Set(core.ActionPause)
	}
	if key.Matches(msg, km.keys.Jump) {
		frame.Set(core.ActionJump)
	}
	if key.Matches(msg, km.keys.Confirm) {
		frame.Set(core.ActionConfirm)
	}

	return false
}

// Advance is called once per tick. It writes the held duck state into the frame.
func (km *KeyMapper) Advance(frame *core.InputFrame) {
	if km.duckHold <= 0 {
		return
	}
	frame.Set(core.ActionDuck)
	km.duckHold--
}

// Release drops any held key state.
func (km *KeyMapper) Release() {
	km.duckHold = 0
}
