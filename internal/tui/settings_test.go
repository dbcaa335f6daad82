package tui

import (
	"strings"
	"testing"

	"github.com/Digital-Shane/search-picker/internal/coordinator"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestSettingsModelView(t *testing.T) {
	themes := theme.NewManager(theme.WithThemeOptions(theme.WithIconSet(theme.IconSetFor("ascii"))))
	m := NewSettingsModel(themes, theme.DefaultWindow, []SettingsEntry{
		{Label: "Theme", Value: "dark"},
		{Label: "Log directory", Value: "/home/user/.search-picker/logs"},
	}, coordinator.Handle{})
	m.Update(tea.WindowSizeMsg{Width: 70, Height: 12})

	view := ansi.Strip(m.View())
	for _, want := range []string{"[*] Search Settings", "Theme          dark", "Log directory  /home/user/.search-picker/logs", "esc close"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestSettingsModelEmpty(t *testing.T) {
	m := NewSettingsModel(theme.NewManager(), theme.DefaultWindow, nil, coordinator.Handle{})

	if !strings.Contains(ansi.Strip(m.View()), "No settings to show.") {
		t.Errorf("View() of empty settings = %q", m.View())
	}
}

func TestSettingsModelDismissOnce(t *testing.T) {
	router := coordinator.NewRouter()
	m := NewSettingsModel(theme.NewManager(), theme.DefaultWindow, nil, coordinator.Weak(router))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	want := []coordinator.Transition{{Kind: coordinator.TransitionDismiss, Animated: true}}
	if diff := cmp.Diff(want, router.Drain()); diff != "" {
		t.Errorf("Drain() mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsModelFollowsTheme(t *testing.T) {
	themes := theme.NewManager()
	m := NewSettingsModel(themes, theme.DefaultWindow, []SettingsEntry{{Label: "Theme", Value: "x"}}, coordinator.Handle{})
	before := m.View()

	if err := themes.SetTheme(theme.DefaultWindow, theme.NameDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	after := m.View()

	if ansi.Strip(before) != ansi.Strip(after) {
		t.Errorf("theme change altered text content:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}
