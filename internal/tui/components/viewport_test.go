package components

import (
	"testing"

	"github.com/Digital-Shane/search-picker/internal/tui/theme"
)

func TestNewViewportSize(t *testing.T) {
	vp := NewViewport(30, 5, theme.New())

	if vp.Width != 30 || vp.Height != 5 {
		t.Errorf("NewViewport() size = %dx%d, want 30x5", vp.Width, vp.Height)
	}
	if got := vp.Style.GetHorizontalBorderSize(); got != 0 {
		t.Errorf("viewport border size = %d, want 0", got)
	}
}

func TestStyleViewportFollowsTheme(t *testing.T) {
	light := theme.New()
	dark := theme.New(theme.WithName(theme.NameDark), theme.WithSpacing(theme.Spacing{PanelPadding: 3}))

	vp := NewViewport(10, 2, light)
	StyleViewport(vp, dark)

	if got := vp.Style.GetPaddingLeft(); got != 3 {
		t.Errorf("padding after restyle = %d, want 3", got)
	}
}
