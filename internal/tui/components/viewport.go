package components

import (
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// NewViewport constructs a viewport painted with the theme's panel surface.
// The border is left to the enclosing panel.
func NewViewport(width, height int, th theme.Theme) *viewport.Model {
	vp := viewport.New(width, height)
	StyleViewport(&vp, th)
	return &vp
}

// StyleViewport repaints an existing viewport after a theme change.
func StyleViewport(vp *viewport.Model, th theme.Theme) {
	vp.Style = th.PanelStyle().
		BorderStyle(lipgloss.Border{}).
		BorderForeground(lipgloss.Color("")).
		Padding(0, th.Spacing().PanelPadding)
}
