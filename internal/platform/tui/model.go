package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flagrun/internal/config"
	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/registry"
)

// footerRows is the space reserved below the arena for the help line.
const footerRows = 1

// Options tune the terminal session.
type Options struct {
	// KeyHoldTicks is how many frames a key press counts as held.
	KeyHoldTicks int

	// HideAutoHintKey enables the U binding.
	HideAutoHintKey bool

	// ScreenshotDir is where Ctrl+S writes. Empty means ~/.flagrun/screenshots.
	ScreenshotDir string
}

// OptionsFor derives terminal options from a game config.
func OptionsFor(cfg config.CaptureConfig, tickRate int) Options {
	return Options{
		KeyHoldTicks:    cfg.KeyHoldTicks(tickRate),
		HideAutoHintKey: cfg.Rules.HideAutoHintKey,
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *CellCanvas
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	hold      *KeyHold
	pending   core.InputFrame // One-shot actions since the last tick
	gameState core.GameState
	status    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are in pixels; the cell grid is derived
// from them.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(max(1, cfg.ScreenW/CellWidth), max(1, cfg.ScreenH/CellHeight))
	cfg.ScreenW, cfg.ScreenH = PixelSize(screen.Width(), screen.Height())

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewCellCanvas(screen),
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(opts.HideAutoHintKey),
		help:    help.New(),
		hold:    NewKeyHold(opts.KeyHoldTicks),
		pending: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
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
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	m.status = ""
	m.pending.Set(core.ActionAnyKey)

	// A new direction ends the hold on its reverse
	if dir := m.keys.Direction(msg); dir != core.ActionNone {
		m.hold.Release(Opposite(dir))
		m.hold.Press(dir)
	}

	// No key-up events: a press of Z or U counts as its release
	switch {
	case key.Matches(msg, m.keys.Auto):
		m.pending.Set(core.ActionAutoMode)
	case key.Matches(msg, m.keys.HideHint):
		m.pending.Set(core.ActionHideAutoHint)
	}

	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(1, msg.Height-footerRows)
	m.screen.Resize(max(1, msg.Width), rows)
	m.config.ScreenW, m.config.ScreenH = m.canvas.Size()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.hold.Apply(&frame)

	m.game.Resize(m.canvas.Size())
	result := m.game.Step(frame)
	m.gameState = result.State

	// Clear input for next frame
	m.pending.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns a
// status line.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.canvas)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Sprintf("screenshot failed: %v", err)
		}
		dir = filepath.Join(home, ".flagrun", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	return "saved " + path
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
