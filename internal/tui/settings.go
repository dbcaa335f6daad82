package tui

import (
	"strings"

	"github.com/Digital-Shane/search-picker/internal/coordinator"
	"github.com/Digital-Shane/search-picker/internal/picker"
	"github.com/Digital-Shane/search-picker/internal/tui/components"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// SettingsEntry is one label/value line on the search settings screen.
type SettingsEntry struct {
	Label string
	Value string
}

type settingsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Dismiss key.Binding
}

var defaultSettingsKeys = settingsKeyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down")),
	Dismiss: key.NewBinding(key.WithKeys("esc", "q")),
}

// SettingsModel is the search settings destination. It lists the effective
// configuration in a scrollable panel and dismisses through the coordinator.
type SettingsModel struct {
	themes      picker.ThemeProvider
	window      theme.WindowID
	entries     []SettingsEntry
	coordinator coordinator.Handle
	keys        settingsKeyMap
	viewport    *viewport.Model
	dismissed   bool
	width       int
	height      int
}

// NewSettingsModel builds the settings screen.
func NewSettingsModel(themes picker.ThemeProvider, window theme.WindowID, entries []SettingsEntry, h coordinator.Handle) *SettingsModel {
	m := &SettingsModel{
		themes:      themes,
		window:      window,
		entries:     append([]SettingsEntry(nil), entries...),
		coordinator: h,
		keys:        defaultSettingsKeys,
		width:       80,
		height:      24,
	}
	m.viewport = components.NewViewport(m.width, m.height-4, m.theme())
	m.refresh()
	return m
}

func (m *SettingsModel) theme() theme.Theme {
	return m.themes.CurrentTheme(m.window)
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.dismissed {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Dismiss):
			m.dismissed = true
			m.coordinator.DismissModal(true)
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	*m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-lays out the panel and repaints it with the current theme.
func (m *SettingsModel) refresh() {
	th := m.theme()
	// header (1), blank line (1), footer (1), panel border (2)
	m.viewport.Width = max(m.width-2, 1)
	m.viewport.Height = max(m.height-5, 1)
	components.StyleViewport(m.viewport, th)
	m.viewport.SetContent(m.renderEntries(th))
}

func (m *SettingsModel) renderEntries(th theme.Theme) string {
	labelWidth := 0
	for _, e := range m.entries {
		labelWidth = max(labelWidth, runewidth.StringWidth(e.Label))
	}

	label := th.KeyStyle()
	value := lipgloss.NewStyle().Foreground(th.Colors().Text)

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(e.Label))
		lines = append(lines, label.Render(e.Label)+pad+"  "+value.Render(e.Value))
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(th.Colors().Muted).Render("No settings to show."))
	}
	return strings.Join(lines, "\n")
}

func (m *SettingsModel) View() string {
	th := m.theme()
	// The theme may have changed while this screen was away.
	m.refresh()

	header := th.HeaderStyle().Width(m.width).Render(th.Icon("settings") + " Search Settings")
	panel := lipgloss.NewStyle().
		Border(th.Borders().Panel).
		BorderForeground(th.Colors().Accent).
		Render(m.viewport.View())
	footer := th.StatusBarStyle().Width(m.width).Render("↑/↓ scroll • esc close")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", panel, footer)
}
