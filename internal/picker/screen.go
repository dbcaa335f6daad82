package picker

import (
	"errors"
	"fmt"

	"github.com/Digital-Shane/search-picker/internal/coordinator"
	"github.com/Digital-Shane/search-picker/internal/log"
	"github.com/Digital-Shane/search-picker/internal/notify"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScreenName identifies the picker in event logs.
const ScreenName = "search-engine-picker"

// ErrMissingThemes is returned when a screen is built without a theme source.
var ErrMissingThemes = errors.New("picker screen requires a theme provider")

// ScreenState tracks where the screen is in its presentation lifecycle.
type ScreenState int

const (
	StateInitialized ScreenState = iota
	StateLoaded
	StatePresented
	StateDismissed
)

func (s ScreenState) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateLoaded:
		return "loaded"
	case StatePresented:
		return "presented"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("ScreenState(%d)", int(s))
	}
}

// ThemeProvider answers which theme applies to a window.
type ThemeProvider interface {
	CurrentTheme(window theme.WindowID) theme.Theme
}

// themeCycler is implemented by providers that can switch a window's theme.
type themeCycler interface {
	Cycle(window theme.WindowID) theme.Theme
}

// Notifier registers observers for named notifications.
type Notifier interface {
	Subscribe(name string, fn func()) notify.Token
	Unsubscribe(token notify.Token)
}

// EventRecorder receives screen events for the session log.
type EventRecorder interface {
	Record(eventType log.EventType, detail string, delivered bool)
}

// Dependencies are the collaborators a Screen is built with. Themes is
// required; the others may be nil.
type Dependencies struct {
	Themes        ThemeProvider
	Notifications Notifier
	Events        EventRecorder
	Window        theme.WindowID
}

// AppearMsg tells the screen it is (again) on display.
type AppearMsg struct{}

// DismissRequestedMsg is sent by the host when the user dismisses the modal
// with a gesture the screen itself does not see.
type DismissRequestedMsg struct{}

// Screen is the search engine picker. It owns the list, supplies its rows,
// applies the window's theme and forwards dismiss and open-settings intents
// to a coordinator it does not own.
type Screen struct {
	deps        Dependencies
	state       ScreenState
	theme       theme.Theme
	list        *List
	keys        KeyMap
	help        help.Model
	coordinator coordinator.Handle

	observer   notify.Token
	subscribed bool

	width, height int
}

// NewScreen builds a picker screen in the initialized state.
func NewScreen(deps Dependencies) (*Screen, error) {
	if deps.Themes == nil {
		return nil, ErrMissingThemes
	}
	if deps.Window == "" {
		deps.Window = theme.DefaultWindow
	}

	th := deps.Themes.CurrentTheme(deps.Window)
	s := &Screen{
		deps:  deps,
		state: StateInitialized,
		theme: th,
		list:  NewList(th),
		keys:  DefaultKeyMap,
		help:  help.New(),
	}
	// Scroll-driven chrome is not implemented; the hook stays registered so
	// the list reports through the same path once it is.
	s.list.OnScroll(func(int) {})
	s.applyHelpStyles()
	return s, nil
}

// State reports the lifecycle state.
func (s *Screen) State() ScreenState {
	return s.state
}

// List exposes the list container.
func (s *Screen) List() *List {
	return s.list
}

// Theme returns the theme last applied.
func (s *Screen) Theme() theme.Theme {
	return s.theme
}

// Present associates the coordinator used for outbound navigation.
func (s *Screen) Present(h coordinator.Handle) {
	s.coordinator = h
	_, alive := h.Get()
	s.record(log.EventPresent, "", alive)
}

// Init loads the rows on first display and schedules the appear pass.
func (s *Screen) Init() tea.Cmd {
	s.load()
	return func() tea.Msg { return AppearMsg{} }
}

func (s *Screen) load() {
	if s.state != StateInitialized {
		return
	}
	s.list.Reload(s.placeholderSections())
	if s.deps.Notifications != nil {
		s.observer = s.deps.Notifications.Subscribe(theme.ChangedNotification, s.handleThemeChanged)
		s.subscribed = true
	}
	s.state = StateLoaded
}

// Appear re-applies the theme each time the screen comes on display.
func (s *Screen) Appear() {
	if s.state == StateDismissed {
		return
	}
	s.load()
	s.ApplyTheme()
	if s.state == StateLoaded {
		s.record(log.EventAppear, s.theme.Name(), true)
	}
	s.state = StatePresented
}

// ApplyTheme restyles the background and list from the window's current
// theme. Calling it repeatedly leaves the same result as calling it once.
func (s *Screen) ApplyTheme() {
	s.theme = s.deps.Themes.CurrentTheme(s.deps.Window)
	s.list.ApplyTheme(s.theme)
	s.applyHelpStyles()
}

func (s *Screen) handleThemeChanged() {
	s.ApplyTheme()
	s.record(log.EventThemeChange, s.theme.Name(), true)
}

// OnDismissRequested forwards a dismiss gesture to the coordinator. A gone
// coordinator drops the call. Only the first request after presentation is
// forwarded.
func (s *Screen) OnDismissRequested() {
	if s.state == StateDismissed {
		return
	}
	delivered := s.coordinator.DismissModal(true)
	s.dismiss()
	s.record(log.EventDismiss, "", delivered)
}

// OnOpenSettingsTapped asks the coordinator to show search settings.
func (s *Screen) OnOpenSettingsTapped() {
	if s.state == StateDismissed {
		return
	}
	delivered := s.coordinator.NavigateToSearchSettings(true)
	s.dismiss()
	s.record(log.EventNavigateSettings, "", delivered)
}

func (s *Screen) dismiss() {
	s.state = StateDismissed
	if s.subscribed {
		s.deps.Notifications.Unsubscribe(s.observer)
		s.subscribed = false
	}
}

// Update handles lifecycle messages and keys.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AppearMsg:
		s.Appear()
		return s, nil
	case DismissRequestedMsg:
		s.OnDismissRequested()
		return s, nil
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return s, nil
	}

	if s.state == StateDismissed {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.Dismiss):
			s.OnDismissRequested()
			return s, nil
		case key.Matches(msg, s.keys.Settings):
			s.OnOpenSettingsTapped()
			return s, nil
		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
			s.resize(s.width, s.height)
			return s, nil
		case key.Matches(msg, s.keys.CycleTheme):
			s.cycleTheme()
			return s, nil
		case key.Matches(msg, s.keys.Activate):
			if row, ran := s.list.ActivateSelected(); ran {
				s.record(log.EventActivateRow, row.Title(), true)
			}
			return s, nil
		}
	}

	return s, s.list.Update(msg)
}

func (s *Screen) cycleTheme() {
	cycler, ok := s.deps.Themes.(themeCycler)
	if !ok {
		return
	}
	cycler.Cycle(s.deps.Window)
	// Subscribed screens are restyled by the change notification.
	if !s.subscribed {
		s.ApplyTheme()
	}
}

func (s *Screen) resize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width

	frame := s.theme.PanelStyle().GetHorizontalFrameSize()
	listWidth := width - frame
	// header, accessibility line, help footer and panel border/padding
	listHeight := height - 2 - lipgloss.Height(s.help.View(s.keys)) - s.theme.PanelStyle().GetVerticalFrameSize()
	s.list.SetSize(listWidth, listHeight)
}

// View renders the screen.
func (s *Screen) View() string {
	title := s.theme.HeaderStyle().Render(s.theme.Icon("title") + " Choose a search engine")
	if s.width > 0 {
		title = s.theme.HeaderStyle().Width(s.width).Render(s.theme.Icon("title") + " Choose a search engine")
	}

	panel := s.theme.PanelStyle()
	if s.width > 0 {
		panel = panel.Width(s.width - panel.GetHorizontalBorderSize())
	}
	body := panel.Render(s.list.View())

	a11y := ""
	if row, ok := s.list.Selected(); ok {
		a11y = lipgloss.NewStyle().Foreground(s.theme.Colors().Muted).Render(AccessibilityText(row))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, title, body, a11y, s.help.View(s.keys))

	screen := s.theme.ScreenStyle()
	if s.width > 0 && s.height > 0 {
		screen = screen.Width(s.width).Height(s.height)
	}
	return screen.Render(view)
}

func (s *Screen) applyHelpStyles() {
	keyStyle := s.theme.KeyStyle()
	descStyle := lipgloss.NewStyle().Foreground(s.theme.Colors().Muted)
	sepStyle := lipgloss.NewStyle().Foreground(s.theme.Colors().Muted)

	s.help.Styles.ShortKey = keyStyle
	s.help.Styles.ShortDesc = descStyle
	s.help.Styles.ShortSeparator = sepStyle
	s.help.Styles.FullKey = keyStyle
	s.help.Styles.FullDesc = descStyle
	s.help.Styles.FullSeparator = sepStyle
	s.help.Styles.Ellipsis = sepStyle
}

func (s *Screen) record(eventType log.EventType, detail string, delivered bool) {
	if s.deps.Events == nil {
		return
	}
	s.deps.Events.Record(eventType, detail, delivered)
}

// placeholderSections is the fixed data shown until a real engine registry
// is wired in: three engines, then the settings entry.
func (s *Screen) placeholderSections() []Section {
	engines := make([]Row, 0, 3)
	for i := 1; i <= 3; i++ {
		engines = append(engines, MustRow(
			fmt.Sprintf("Search engine %d", i),
			WithIcon("engine"),
			WithAccessibilityHint("Sets the default search engine"),
		))
	}

	settings := MustRow(
		"Search Settings",
		WithIcon("settings"),
		WithDisclosure(),
		WithAccessibilityHint("Opens search settings"),
		WithAction(s.OnOpenSettingsTapped),
	)

	return []Section{
		NewSection(engines...).WithHeader("Default search engine"),
		NewSection(settings),
	}
}
