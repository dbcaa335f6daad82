package theme

import (
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"
)

// WindowID identifies the window context a theme is looked up for.
type WindowID string

// DefaultWindow is the window used when the host has only one.
const DefaultWindow WindowID = "main"

// ChangedNotification is posted whenever a window's theme changes.
const ChangedNotification = "theme.changed"

// ErrUnknownTheme is returned when a theme name is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Poster delivers named notifications to observers.
type Poster interface {
	Post(name string)
}

// Manager answers which theme applies to a window. Each window can override
// the default; windows without an override use the default theme.
type Manager struct {
	themes      map[string]Theme
	order       []string
	defaultName string
	overrides   *cache.Cache
	poster      Poster
}

// ManagerOption configures a Manager during construction.
type ManagerOption func(*Manager)

// WithThemes registers themes in addition to the built-in set.
func WithThemes(themes ...Theme) ManagerOption {
	return func(m *Manager) {
		for _, th := range themes {
			m.register(th)
		}
	}
}

// WithDefaultTheme selects the theme used by windows without an override.
// "auto" picks light or dark from the terminal background.
func WithDefaultTheme(name string) ManagerOption {
	return func(m *Manager) {
		m.defaultName = ResolveName(name)
	}
}

// WithPoster sets where theme change notifications are posted.
func WithPoster(p Poster) ManagerOption {
	return func(m *Manager) {
		m.poster = p
	}
}

// WithThemeOptions rebuilds the built-in themes with extra options, such as a
// forced icon set.
func WithThemeOptions(opts ...Option) ManagerOption {
	return func(m *Manager) {
		for _, th := range Builtin(opts...) {
			m.register(th)
		}
	}
}

// NewManager builds a manager seeded with the built-in themes.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		themes:      make(map[string]Theme),
		defaultName: NameLight,
		overrides:   cache.New(cache.NoExpiration, 0),
	}
	for _, th := range Builtin() {
		m.register(th)
	}
	for _, opt := range opts {
		opt(m)
	}
	if _, ok := m.themes[m.defaultName]; !ok {
		m.defaultName = NameLight
	}
	return m
}

func (m *Manager) register(th Theme) {
	if th.Name() == "" {
		return
	}
	if _, exists := m.themes[th.Name()]; !exists {
		m.order = append(m.order, th.Name())
	}
	m.themes[th.Name()] = th
}

// Names lists registered theme names in registration order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

// Named returns the named theme, falling back to the default theme.
func (m *Manager) Named(name string) Theme {
	if th, ok := m.themes[name]; ok {
		return th
	}
	return m.themes[m.defaultName]
}

// CurrentTheme returns the theme for the given window.
func (m *Manager) CurrentTheme(window WindowID) Theme {
	if cached, found := m.overrides.Get(string(window)); found {
		if name, ok := cached.(string); ok {
			return m.Named(name)
		}
	}
	return m.Named(m.defaultName)
}

// SetTheme overrides the theme for a window. A notification is posted only
// when the effective theme changes.
func (m *Manager) SetTheme(window WindowID, name string) error {
	if _, ok := m.themes[name]; !ok {
		return fmt.Errorf("set theme %q: %w", name, ErrUnknownTheme)
	}
	previous := m.CurrentTheme(window).Name()
	m.overrides.Set(string(window), name, cache.NoExpiration)
	if previous != name && m.poster != nil {
		m.poster.Post(ChangedNotification)
	}
	return nil
}

// Cycle moves the window to the next registered theme and returns it.
func (m *Manager) Cycle(window WindowID) Theme {
	current := m.CurrentTheme(window).Name()
	next := m.order[0]
	for i, name := range m.order {
		if name == current {
			next = m.order[(i+1)%len(m.order)]
			break
		}
	}
	// next is always registered, so SetTheme cannot fail here.
	_ = m.SetTheme(window, next)
	return m.CurrentTheme(window)
}

// ClearOverride drops a window's override so it follows the default again.
func (m *Manager) ClearOverride(window WindowID) {
	previous := m.CurrentTheme(window).Name()
	m.overrides.Delete(string(window))
	if previous != m.defaultName && m.poster != nil {
		m.poster.Post(ChangedNotification)
	}
}
