package picker

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entry locates a tree node inside the section slice. Section nodes carry
// row -1.
type entry struct {
	section int
	row     int
}

// List renders sections as a grouped list. Sections are the roots of the
// backing tree and rows their children, so walking the tree yields display
// order. Every Reload replaces the whole tree.
type List struct {
	theme    theme.Theme
	keys     KeyMap
	sections []Section
	tree     *treeview.Tree[entry]

	cursor   int
	rowLines []int // content line of each row, in display order
	content  string

	viewport   viewport.Model
	width      int
	height     int
	lastOffset int
	onScroll   func(offset int)
}

// NewList creates an empty list styled with th.
func NewList(th theme.Theme) *List {
	l := &List{
		theme:    th,
		keys:     DefaultKeyMap,
		viewport: viewport.New(0, 0),
	}
	l.Reload(nil)
	return l
}

// OnScroll registers the function told about vertical scroll offset changes.
func (l *List) OnScroll(fn func(offset int)) {
	l.onScroll = fn
}

// Reload replaces all content and re-renders. The cursor returns to the
// first row.
func (l *List) Reload(sections []Section) {
	l.sections = append([]Section(nil), sections...)

	roots := make([]*treeview.Node[entry], 0, len(l.sections))
	for si, sec := range l.sections {
		parent := treeview.NewNode(fmt.Sprintf("section-%d", si), sec.Header(), entry{section: si, row: -1})
		for ri, row := range sec.rows {
			child := treeview.NewNode(fmt.Sprintf("section-%d-row-%d", si, ri), row.Title(), entry{section: si, row: ri})
			parent.AddChild(child)
		}
		roots = append(roots, parent)
	}
	l.tree = treeview.NewTree(roots)

	l.cursor = 0
	l.viewport.GotoTop()
	l.render()
	l.notifyScroll()
}

// ApplyTheme restyles the rendered rows without touching the data.
func (l *List) ApplyTheme(th theme.Theme) {
	l.theme = th
	l.render()
}

// Theme returns the theme rows are currently drawn with.
func (l *List) Theme() theme.Theme {
	return l.theme
}

// SetSize resizes the visible area.
func (l *List) SetSize(width, height int) {
	l.width = max(width, 0)
	l.height = max(height, 0)
	l.viewport.Width = l.width
	l.viewport.Height = l.height
	l.render()
	l.ensureVisible()
}

// SectionCount reports the number of rendered sections.
func (l *List) SectionCount() int {
	return len(l.tree.Nodes())
}

// RowCount reports the number of rendered rows across all sections.
func (l *List) RowCount() int {
	count := 0
	for _, parent := range l.tree.Nodes() {
		count += len(parent.Children())
	}
	return count
}

// Rows returns every row in display order.
func (l *List) Rows() []Row {
	rows := make([]Row, 0, len(l.rowLines))
	for _, parent := range l.tree.Nodes() {
		for _, child := range parent.Children() {
			rows = append(rows, l.rowFor(child))
		}
	}
	return rows
}

// SectionRowCounts reports how many rows each section rendered, in order.
func (l *List) SectionRowCounts() []int {
	counts := make([]int, 0, len(l.sections))
	for _, parent := range l.tree.Nodes() {
		counts = append(counts, len(parent.Children()))
	}
	return counts
}

// Cursor returns the index of the focused row.
func (l *List) Cursor() int {
	return l.cursor
}

// Selected returns the focused row, if any.
func (l *List) Selected() (Row, bool) {
	rows := l.Rows()
	if l.cursor < 0 || l.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[l.cursor], true
}

// ActivateSelected runs the focused row's action. It returns the row and
// whether an action ran.
func (l *List) ActivateSelected() (Row, bool) {
	row, ok := l.Selected()
	if !ok {
		return Row{}, false
	}
	return row, row.Activate()
}

// MoveCursor moves the focus by delta rows, clamped to the list bounds.
func (l *List) MoveCursor(delta int) {
	l.setCursor(l.cursor + delta)
}

func (l *List) setCursor(idx int) {
	last := len(l.rowLines) - 1
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	if idx == l.cursor {
		return
	}
	l.cursor = idx
	l.render()
	l.ensureVisible()
}

// Update handles navigation keys and mouse wheel scrolling.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, l.keys.Up):
			l.MoveCursor(-1)
		case key.Matches(msg, l.keys.Down):
			l.MoveCursor(1)
		case key.Matches(msg, l.keys.Home):
			l.setCursor(0)
		case key.Matches(msg, l.keys.End):
			l.setCursor(len(l.rowLines) - 1)
		case key.Matches(msg, l.keys.PageUp):
			l.MoveCursor(-max(l.height/2, 1))
		case key.Matches(msg, l.keys.PageDown):
			l.MoveCursor(max(l.height/2, 1))
		}
		return nil
	}

	if _, ok := msg.(tea.MouseMsg); ok {
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		l.notifyScroll()
		return cmd
	}
	return nil
}

// View renders the visible part of the list. Before the first resize the
// whole list is returned.
func (l *List) View() string {
	if l.height == 0 {
		return l.content
	}
	return l.viewport.View()
}

func (l *List) rowFor(node *treeview.Node[entry]) Row {
	e := node.Data()
	return l.sections[e.section].rows[e.row]
}

func (l *List) render() {
	var lines []string
	l.rowLines = l.rowLines[:0]
	idx := 0

	for si, parent := range l.tree.Nodes() {
		if si > 0 {
			for i := 0; i < l.theme.Spacing().SectionGap; i++ {
				lines = append(lines, "")
			}
		}
		if header := parent.Name(); header != "" {
			lines = append(lines, l.theme.SectionHeaderStyle().Render(strings.ToUpper(header)))
		}
		for _, child := range parent.Children() {
			l.rowLines = append(l.rowLines, len(lines))
			lines = append(lines, RenderCell(l.rowFor(child), l.theme, CellOptions{
				Width:   l.width,
				Focused: idx == l.cursor,
			}))
			idx++
		}
	}

	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(l.theme.Colors().Muted).Render("Nothing to choose from."))
	}

	l.content = strings.Join(lines, "\n")
	l.viewport.SetContent(l.content)
}

// ensureVisible scrolls the focused row on screen. Focusing the first row
// scrolls to the very top so its section header stays visible.
func (l *List) ensureVisible() {
	if l.height == 0 || len(l.rowLines) == 0 {
		return
	}
	line := l.rowLines[l.cursor]
	top := line
	if l.cursor == 0 {
		top = 0
	}

	switch {
	case top < l.viewport.YOffset:
		l.viewport.SetYOffset(top)
	case line >= l.viewport.YOffset+l.height:
		l.viewport.SetYOffset(line - l.height + 1)
	}
	l.notifyScroll()
}

func (l *List) notifyScroll() {
	offset := l.viewport.YOffset
	if offset == l.lastOffset {
		return
	}
	l.lastOffset = offset
	if l.onScroll != nil {
		l.onScroll(offset)
	}
}
