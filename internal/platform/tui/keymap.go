package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flagrun/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Move       key.Binding // Help only; matches any direction
	Auto       key.Binding
	HideHint   key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Auto, k.HideHint, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Auto, k.HideHint},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. hideHint controls whether
// the U binding is active.
func DefaultKeyMap(hideHint bool) KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Auto: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "auto mode"),
		),
		HideHint: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "hide banner"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
	km.HideHint.SetEnabled(hideHint)
	return km
}

// Direction returns the movement action bound to msg, or ActionNone.
func (k KeyMap) Direction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// Opposite returns the reverse direction of a, or ActionNone.
func Opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// KeyHold emulates held keys. Terminals report presses (and autorepeat)
// but never releases, so a press keeps its action active for a fixed
// number of frames; autorepeat keeps refreshing it while the key is down.
type KeyHold struct {
	ticks int
	left  map[core.Action]int
}

// NewKeyHold creates a hold tracker that keeps presses for ticks frames.
func NewKeyHold(ticks int) *KeyHold {
	return &KeyHold{
		ticks: max(1, ticks),
		left:  make(map[core.Action]int),
	}
}

// Press marks a as held for the full hold duration.
func (h *KeyHold) Press(a core.Action) {
	h.left[a] = h.ticks
}

// Release drops a before its hold runs out.
func (h *KeyHold) Release(a core.Action) {
	delete(h.left, a)
}

// Apply sets every held action on the frame and counts one frame down.
func (h *KeyHold) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}
