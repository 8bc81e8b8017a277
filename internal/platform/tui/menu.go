package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flagrun/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// menuKeyMap defines the key bindings for the game picker.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem // Set when user selects a game
}

// NewMenuModel lists every registered game. width is in cells.
func NewMenuModel(width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   defaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F L A G R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your rules", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		style := menuItemStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %s", item.Title)
			style = menuSelectedStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
