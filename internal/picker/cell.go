package picker

import (
	"strings"

	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// CellOptions controls how a single row is drawn.
type CellOptions struct {
	Width   int
	Focused bool
}

// minDescriptionWidth is the narrowest description worth showing.
const minDescriptionWidth = 4

// RenderCell draws one row as a single line. The title is rendered verbatim
// unless the width forces truncation, in which case it ends with an ellipsis
// and the description is dropped first.
func RenderCell(row Row, th theme.Theme, opts CellOptions) string {
	cursor := " "
	if opts.Focused {
		cursor = th.Icon("cursor")
	}

	icon := th.Icon(row.Icon())
	if row.Icon() == "" || icon == "" {
		icon = th.Icon("default")
	}
	if !row.Enabled() {
		icon = th.Icon("disabled")
	}

	var trailing []string
	if row.Active() {
		trailing = append(trailing, th.Icon("check"))
	}
	if row.HasDisclosure() {
		trailing = append(trailing, th.Icon("chevron"))
	}
	suffix := strings.Join(trailing, " ")

	title := row.Title()
	desc := row.Description()
	if opts.Width > 0 {
		fixed := runewidth.StringWidth(cursor) + runewidth.StringWidth(icon) + 2
		if suffix != "" {
			fixed += runewidth.StringWidth(suffix) + 1
		}
		avail := opts.Width - fixed
		if avail < 1 {
			avail = 1
		}
		if runewidth.StringWidth(title) > avail {
			title = runewidth.Truncate(title, avail, "…")
			desc = ""
		} else if desc != "" {
			room := avail - runewidth.StringWidth(title) - 2
			if room < minDescriptionWidth {
				desc = ""
			} else {
				desc = runewidth.Truncate(desc, room, "…")
			}
		}
	}

	line := cursor + " " + icon + " " + th.RowStyle(opts.Focused, row.Enabled()).Render(title)
	if desc != "" {
		line += "  " + th.DescriptionStyle().Render(desc)
	}

	if suffix != "" {
		suffixStyle := lipgloss.NewStyle().Foreground(th.Colors().Accent)
		if opts.Width > 0 {
			gap := opts.Width - lipgloss.Width(line) - runewidth.StringWidth(suffix)
			if gap < 1 {
				gap = 1
			}
			line += strings.Repeat(" ", gap) + suffixStyle.Render(suffix)
		} else {
			line += " " + suffixStyle.Render(suffix)
		}
	}

	return line
}

// AccessibilityText is what assistive output announces for a row:
// "label, hint (id)", with the hint omitted when absent.
func AccessibilityText(row Row) string {
	text := row.AccessibilityLabel()
	if hint := row.AccessibilityHint(); hint != "" {
		text += ", " + hint
	}
	return text + " (" + row.AccessibilityID() + ")"
}
