package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/registry"
)

var lastPicked *recordingGame

func init() {
	registry.Register("recorder", func() registry.Game {
		lastPicked = &recordingGame{}
		return lastPicked
	})
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(60, 20)

	view := m.View()
	if !strings.Contains(view, "Recorder") {
		t.Errorf("menu view missing game title:\n%s", view)
	}
	if !strings.Contains(view, "> Recorder") {
		t.Error("cursor should start on the first game")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}
	for range len(m.items) + 2 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestSessionPicksGame(t *testing.T) {
	var got registry.Game
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 5}
	s := NewSessionModel(40, 13, cfg, func(g registry.Game) Options {
		got = g
		return Options{KeyHoldTicks: 1}
	})

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.game == nil {
		t.Fatal("Enter should start the selected game")
	}
	if cmd == nil {
		t.Error("game start should schedule the first tick")
	}
	if got == nil || got.ID() != "recorder" {
		t.Errorf("options built for %v", got)
	}
	if lastPicked.resets != 1 {
		t.Errorf("game resets = %d, expected 1", lastPicked.resets)
	}

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	if size := lastPicked.sizes[0]; size != [2]int{320, 192} {
		t.Errorf("game size = %v, expected [320 192]", size)
	}
	if !strings.Contains(s.View(), "frame") {
		t.Error("session should show the game")
	}

	next, _ = s.Update(runes("q"))
	if next.(SessionModel).View() != "" {
		t.Error("quitting the game should end the session")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	s := NewSessionModel(40, 12, core.RuntimeConfig{TickRate: 60}, nil)

	next, cmd := s.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(SessionModel).View() != "" {
		t.Error("View should be empty after quit")
	}
}
