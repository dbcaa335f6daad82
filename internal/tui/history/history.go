package history

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/search-picker/internal/log"
	"github.com/Digital-Shane/search-picker/internal/tui/components"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// recentEvents is how many of a session's last events the details panel lists.
const recentEvents = 8

// Model browses recorded picker sessions: a session list on the left and the
// focused session's details on the right.
type Model struct {
	*treeview.TuiTreeModel[log.SessionSummary]
	width      int
	height     int
	splitRatio float64
	theme      theme.Theme

	detailsViewport *viewport.Model
	detailsFocused  bool
}

// Option configures a Model during construction.
type Option func(*Model)

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// NewTree builds the session tree, one root per session.
func NewTree(summaries []log.SessionSummary) *treeview.Tree[log.SessionSummary] {
	nodes := make([]*treeview.Node[log.SessionSummary], 0, len(summaries))
	for _, summary := range summaries {
		name := fmt.Sprintf("%s · %s", summary.RelativeTime, summary.Outcome())
		nodes = append(nodes, treeview.NewNode("session-"+summary.Session.Metadata.SessionID, name, summary))
	}
	return treeview.NewTree(nodes)
}

// New creates the history browser for tree.
func New(tree *treeview.Tree[log.SessionSummary], opts ...Option) *Model {
	m := &Model{
		width:      80,
		height:     24,
		splitRatio: 0.5,
	}

	for _, opt := range append([]Option{WithTheme(theme.Default())}, opts...) {
		opt(m)
	}

	keyMap := treeview.DefaultKeyMap()
	keyMap.SearchStart = []string{}
	keyMap.Reset = []string{}

	treeWidth := m.treeWidth()
	m.TuiTreeModel = treeview.NewTuiTreeModel(tree,
		treeview.WithTuiWidth[log.SessionSummary](treeWidth),
		treeview.WithTuiHeight[log.SessionSummary](m.height-4),
		treeview.WithTuiAllowResize[log.SessionSummary](true),
		treeview.WithTuiDisableNavBar[log.SessionSummary](true),
		treeview.WithTuiKeyMap[log.SessionSummary](keyMap),
	)

	// header, borders, and instructions
	m.detailsViewport = components.NewViewport(m.width-treeWidth-6, m.height-8, m.theme)
	return m
}

func (m *Model) treeWidth() int {
	return int(float64(m.width)*m.splitRatio) - 2
}

// DetailsFocused reports whether arrow keys scroll the details panel.
func (m *Model) DetailsFocused() bool {
	return m.detailsFocused
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		treeWidth := m.treeWidth()
		treeModel, cmd := m.TuiTreeModel.Update(tea.WindowSizeMsg{
			Width:  treeWidth,
			Height: m.height - 4,
		})
		m.TuiTreeModel = treeModel.(*treeview.TuiTreeModel[log.SessionSummary])

		m.detailsViewport.Width = m.width - treeWidth - 6
		m.detailsViewport.Height = m.height - 8
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.detailsFocused = !m.detailsFocused
			return m, nil
		case "up":
			if m.detailsFocused {
				m.detailsViewport.ScrollUp(1)
				return m, nil
			}
		case "down":
			if m.detailsFocused {
				m.detailsViewport.ScrollDown(1)
				return m, nil
			}
		case "pgup":
			if m.detailsFocused {
				m.detailsViewport.HalfPageUp()
				return m, nil
			}
		case "pgdown":
			if m.detailsFocused {
				m.detailsViewport.HalfPageDown()
				return m, nil
			}
		}
	}

	if m.detailsFocused {
		return m, nil
	}
	treeModel, cmd := m.TuiTreeModel.Update(msg)
	m.TuiTreeModel = treeModel.(*treeview.TuiTreeModel[log.SessionSummary])
	return m, cmd
}

func (m *Model) View() string {
	header := m.theme.HeaderStyle().Width(m.width).Render(m.theme.Icon("title") + " Picker Sessions")

	leftWidth := int(float64(m.width) * m.splitRatio)
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSessionList(leftWidth, m.height-3),
		m.renderSessionDetails(m.width-leftWidth, m.height-3),
	)

	focus := "Tab: Details Focus | "
	if m.detailsFocused {
		focus = "Tab: List Focus | "
	}
	instructions := lipgloss.NewStyle().
		Italic(true).
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(m.theme.Colors().Muted).
		Render(focus + "↑↓ Navigate | PgUp/PgDn: Page | Esc: Quit")

	return header + "\n" + content + "\n" + instructions
}

func (m *Model) sizedPanel(width, height int, borderColor lipgloss.Color) lipgloss.Style {
	style := m.theme.PanelStyle().BorderForeground(borderColor)
	if width > 0 {
		style = style.Width(max(width-style.GetHorizontalFrameSize(), 0))
	}
	if height > 0 {
		style = style.Height(max(height-style.GetVerticalFrameSize(), 0))
	}
	return style.Padding(0, 1)
}

func (m *Model) panelTitle(text string, width int, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Width(max(width-4, 0)).
		Align(lipgloss.Center).
		Render(text)
}

func (m *Model) renderSessionList(width, height int) string {
	colors := m.theme.Colors()
	title := m.panelTitle("Sessions", width, colors.Primary)

	body := m.TuiTreeModel.View()
	if len(m.TuiTreeModel.Tree.Nodes()) == 0 {
		body = lipgloss.NewStyle().Italic(true).Foreground(colors.Muted).Render("No sessions recorded yet")
	}
	return m.sizedPanel(width, height, colors.Primary).Render(title + "\n" + body)
}

func (m *Model) renderSessionDetails(width, height int) string {
	colors := m.theme.Colors()

	if node := m.TuiTreeModel.Tree.GetFocusedNode(); node != nil {
		m.detailsViewport.SetContent(m.formatSessionDetails(*node.Data(), m.detailsViewport.Width))
	} else {
		m.detailsViewport.SetContent(lipgloss.NewStyle().
			Italic(true).
			Foreground(colors.Muted).
			Render("Select a session to view details"))
	}

	indicator := ""
	if m.detailsViewport.TotalLineCount() > m.detailsViewport.Height {
		indicator = " [Tab to scroll]"
		if m.detailsFocused {
			indicator = " [Use Tab+↑↓]"
		}
	}

	full := lipgloss.JoinVertical(lipgloss.Left,
		m.panelTitle("Session Details"+indicator, width, colors.Secondary),
		"",
		m.detailsViewport.View(),
	)
	return m.sizedPanel(width, height, colors.Secondary).Render(full)
}

func (m *Model) formatSessionDetails(summary log.SessionSummary, width int) string {
	var b strings.Builder
	meta := summary.Session.Metadata
	colors := m.theme.Colors()

	label := lipgloss.NewStyle().Bold(true).Foreground(colors.Accent)
	value := lipgloss.NewStyle().Foreground(colors.Primary)

	b.WriteString(label.Render("Command: "))
	b.WriteString(value.Render(strings.Join(meta.CommandArgs, " ")))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Time: "))
	b.WriteString(value.Render(summary.RelativeTime))
	b.WriteString("\n")
	b.WriteString(label.Render("Date: "))
	b.WriteString(value.Render(meta.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString("\n")
	b.WriteString(label.Render("Outcome: "))
	b.WriteString(value.Render(summary.Outcome()))
	b.WriteString("\n\n")

	indent := lipgloss.NewStyle().MarginLeft(2)
	b.WriteString(label.Render("Events:"))
	b.WriteString("\n")
	b.WriteString(indent.Render(value.Render(fmt.Sprintf("Total: %d\nDelivered: %d\nDropped: %d",
		meta.TotalEvents, meta.DeliveredEvents, meta.DroppedEvents))))
	b.WriteString("\n\n")

	if events := summary.Session.Events; len(events) > 0 {
		b.WriteString(label.Render("Recent Events:"))
		b.WriteString("\n")
		for _, ev := range events[max(len(events)-recentEvents, 0):] {
			b.WriteString(indent.Render(m.eventIcon(ev) + " " + formatEvent(ev, width-6)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(label.Render("Session ID: "))
	b.WriteString(lipgloss.NewStyle().Foreground(colors.Muted).Italic(true).Render(meta.SessionID))
	return b.String()
}

func (m *Model) eventIcon(ev log.EventLog) string {
	if !ev.Delivered {
		return m.theme.Icon("disabled")
	}
	switch ev.Type {
	case log.EventNavigateSettings:
		return m.theme.Icon("settings")
	case log.EventActivateRow:
		return m.theme.Icon("check")
	default:
		return m.theme.Icon("default")
	}
}

// formatEvent renders one event on a line no wider than maxWidth.
func formatEvent(ev log.EventLog, maxWidth int) string {
	text := string(ev.Type)
	if ev.Detail != "" {
		text += ": " + ev.Detail
	}
	if !ev.Delivered {
		text += " (dropped)"
	}
	if maxWidth > 0 && runewidth.StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, "...")
	}
	return text
}
