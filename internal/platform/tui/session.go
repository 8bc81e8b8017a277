package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/registry"
)

// OptionsFunc returns the terminal options for a freshly created game.
type OptionsFunc func(game registry.Game) Options

// SessionModel is the per-connection flow: game picker, then the game.
type SessionModel struct {
	menu     MenuModel
	game     *Model
	config   core.RuntimeConfig // Pixel size tracks the terminal
	options  OptionsFunc
	cols     int
	rows     int
	quitting bool
}

// NewSessionModel starts on the picker. cols and rows are the terminal
// size in cells.
func NewSessionModel(cols, rows int, cfg core.RuntimeConfig, options OptionsFunc) SessionModel {
	return SessionModel{
		menu:    NewMenuModel(cols, rows),
		config:  cfg,
		options: options,
		cols:    cols,
		rows:    rows,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cols, m.rows = wsm.Width, wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// The menu only lists registered games
		return m, nil
	}

	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = PixelSize(max(1, m.cols), max(1, m.rows-footerRows))

	var opts Options
	if m.options != nil {
		opts = m.options(game)
	}
	model := NewModel(game, cfg, opts)
	m.game = &model
	return m, model.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if model, ok := next.(Model); ok {
		m.game = &model
	}
	if m.game.quitting {
		m.quitting = true
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
