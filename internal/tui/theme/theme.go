package theme

import (
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

// IconSet represents a collection of icons keyed by semantic usage.
type IconSet map[string]string

// clone returns a copy of the icon set to avoid shared mutation across themes.
func (s IconSet) clone() IconSet {
	if s == nil {
		return nil
	}
	clone := make(IconSet, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Colors holds the palette a screen is painted with.
type Colors struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

// Borders defines reusable border styles.
type Borders struct {
	Panel lipgloss.Border
}

// Spacing captures commonly used spacing values.
type Spacing struct {
	PanelPadding   int
	SectionGap     int
	StatusHPadding int
}

// Theme centralizes palette, border, spacing, and icon configuration.
type Theme struct {
	name     string
	colors   Colors
	borders  Borders
	spacing  Spacing
	icons    IconSet
	fallback IconSet
}

// Option configures a Theme during construction.
type Option func(*Theme)

// WithName sets the name the theme is registered under.
func WithName(name string) Option {
	return func(t *Theme) {
		t.name = name
	}
}

// WithIconSet overrides the icon set used by the theme.
func WithIconSet(set IconSet) Option {
	return func(t *Theme) {
		t.icons = set.clone()
	}
}

// WithColors overrides the base color palette.
func WithColors(colors Colors) Option {
	return func(t *Theme) {
		t.colors = colors
	}
}

// WithSpacing overrides the default spacing values.
func WithSpacing(spacing Spacing) Option {
	return func(t *Theme) {
		t.spacing = spacing
	}
}

// WithBorders overrides the border configuration.
func WithBorders(borders Borders) Option {
	return func(t *Theme) {
		t.borders = borders
	}
}

// New constructs a Theme with optional overrides applied.
func New(opts ...Option) Theme {
	defaults := []Option{
		WithName(NameLight),
		WithColors(lightColors),
		WithBorders(Borders{Panel: lipgloss.RoundedBorder()}),
		WithSpacing(Spacing{PanelPadding: 1, SectionGap: 1, StatusHPadding: 1}),
		WithIconSet(defaultIconSet()),
	}

	t := Theme{fallback: asciiIcons.clone()}

	for _, opt := range append(defaults, opts...) {
		opt(&t)
	}

	if t.icons == nil {
		t.icons = defaultIconSet()
	}

	return t
}

// Default returns the default Theme configuration.
func Default() Theme {
	return New()
}

// Name reports the registered theme name.
func (t Theme) Name() string {
	return t.name
}

// Colors exposes the theme color palette.
func (t Theme) Colors() Colors {
	return t.colors
}

// Borders exposes the theme border configuration.
func (t Theme) Borders() Borders {
	return t.borders
}

// Spacing exposes the theme spacing configuration.
func (t Theme) Spacing() Spacing {
	return t.spacing
}

// Icon returns a themed icon with ASCII fallback if unavailable.
func (t Theme) Icon(name string) string {
	if icon, ok := t.icons[name]; ok {
		return icon
	}
	if icon, ok := t.fallback[name]; ok {
		return icon
	}
	return ""
}

// IconSet returns a defensive copy of the themed icon map.
func (t Theme) IconSet() IconSet {
	return t.icons.clone()
}

// ScreenStyle paints the full screen background.
func (t Theme) ScreenStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.colors.Background).
		Foreground(t.colors.Text)
}

// HeaderStyle returns the shared style used for primary headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Background(t.colors.Primary).
		Foreground(t.colors.Background).
		Align(lipgloss.Center)
}

// StatusBarStyle returns the shared style used for footer/status bars.
func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.colors.Secondary).
		Foreground(t.colors.Background).
		Padding(0, t.spacing.StatusHPadding)
}

// PanelStyle returns the shared panel container style.
func (t Theme) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.borders.Panel).
		BorderForeground(t.colors.Accent).
		Background(t.colors.Surface).
		Padding(t.spacing.PanelPadding)
}

// PanelTitleStyle returns the shared style for panel titles.
func (t Theme) PanelTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true)
}

// SectionHeaderStyle styles the caption above a group of rows.
func (t Theme) SectionHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.colors.Muted).
		Bold(true)
}

// RowStyle returns the title style for a list row.
func (t Theme) RowStyle(focused, enabled bool) lipgloss.Style {
	switch {
	case focused:
		return lipgloss.NewStyle().
			Bold(true).
			Background(t.colors.Primary).
			Foreground(t.colors.Background)
	case !enabled:
		return lipgloss.NewStyle().Foreground(t.colors.Muted)
	default:
		return lipgloss.NewStyle().Foreground(t.colors.Text)
	}
}

// DescriptionStyle styles secondary row text.
func (t Theme) DescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.colors.Muted).
		Italic(true)
}

// KeyStyle highlights key names in help text.
func (t Theme) KeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.colors.Accent).Bold(true)
}

// defaultIconSet chooses the best icon set for the current terminal.
func defaultIconSet() IconSet {
	if isLimitedTerminal() {
		return asciiIcons.clone()
	}
	return emojiIcons.clone()
}

// IconSetFor resolves an icon mode ("emoji", "ascii" or "auto").
func IconSetFor(mode string) IconSet {
	switch mode {
	case "emoji":
		return emojiIcons.clone()
	case "ascii":
		return asciiIcons.clone()
	default:
		return defaultIconSet()
	}
}

// isLimitedTerminal detects environments where ASCII icons are preferable.
func isLimitedTerminal() bool {
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" {
		return true
	}
	return runtime.GOOS == "windows"
}

var emojiIcons = IconSet{
	"title":    "🔎",
	"engine":   "🌐",
	"settings": "⚙",
	"check":    "✅",
	"chevron":  "›",
	"cursor":   "▸",
	"disabled": "⊘",
	"default":  "•",
}

var asciiIcons = IconSet{
	"title":    "[S]",
	"engine":   "[G]",
	"settings": "[*]",
	"check":    "[v]",
	"chevron":  ">",
	"cursor":   ">",
	"disabled": "[-]",
	"default":  "-",
}
