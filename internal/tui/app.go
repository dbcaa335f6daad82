package tui

import (
	"fmt"

	"github.com/Digital-Shane/search-picker/internal/coordinator"
	"github.com/Digital-Shane/search-picker/internal/picker"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the host application.
type Options struct {
	Themes        *theme.Manager
	Notifications picker.Notifier
	Events        picker.EventRecorder
	Window        theme.WindowID
	Settings      []SettingsEntry
}

// App hosts the picker modally. It owns the router the picker reports to and
// carries out the queued transitions after every update.
type App struct {
	picker   *picker.Screen
	settings *SettingsModel
	router   *coordinator.Router
	opts     Options
	route    coordinator.Route
	width    int
	height   int
	quitting bool
}

// NewApp builds the host and presents the picker.
func NewApp(opts Options) (*App, error) {
	if opts.Window == "" {
		opts.Window = theme.DefaultWindow
	}
	var themes picker.ThemeProvider
	if opts.Themes != nil {
		themes = opts.Themes
	}

	screen, err := picker.NewScreen(picker.Dependencies{
		Themes:        themes,
		Notifications: opts.Notifications,
		Events:        opts.Events,
		Window:        opts.Window,
	})
	if err != nil {
		return nil, fmt.Errorf("create picker: %w", err)
	}

	a := &App{
		picker: screen,
		router: coordinator.NewRouter(),
		opts:   opts,
		width:  80,
		height: 24,
	}
	screen.Present(coordinator.Weak(a.router))
	return a, nil
}

// Picker returns the presented picker screen.
func (a *App) Picker() *picker.Screen {
	return a.picker
}

// Route reports the screen currently shown.
func (a *App) Route() coordinator.Route {
	return a.route
}

// Transitions returns every transition the picker and settings screens
// requested.
func (a *App) Transitions() []coordinator.Transition {
	return a.router.History()
}

func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		a.quitting = true
		return a, tea.Quit
	}
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
		a.picker.Update(msg)
		if a.settings != nil {
			a.settings.Update(msg)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.route {
	case coordinator.RouteSearchSettings:
		_, cmd = a.settings.Update(msg)
	default:
		_, cmd = a.picker.Update(msg)
	}

	return a, tea.Batch(cmd, a.drain())
}

// drain performs queued transitions in request order. A dismissal ends the
// program, so anything queued after it is dropped.
func (a *App) drain() tea.Cmd {
	for _, t := range a.router.Drain() {
		switch t.Kind {
		case coordinator.TransitionDismiss:
			a.quitting = true
			return tea.Quit
		case coordinator.TransitionNavigate:
			a.navigate(t.Route)
		}
	}
	return nil
}

func (a *App) navigate(route coordinator.Route) {
	if route != coordinator.RouteSearchSettings {
		return
	}
	a.settings = NewSettingsModel(a.opts.Themes, a.opts.Window, a.opts.Settings, coordinator.Weak(a.router))
	a.settings.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.route = route
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.route == coordinator.RouteSearchSettings {
		return a.settings.View()
	}
	return a.picker.View()
}
