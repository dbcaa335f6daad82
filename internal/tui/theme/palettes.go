package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Registered theme names.
const (
	NameLight   = "light"
	NameDark    = "dark"
	NamePrivate = "private"
	NameAuto    = "auto"
)

var lightColors = Colors{
	Primary:    lipgloss.Color("#3a6b4a"),
	Secondary:  lipgloss.Color("#5a8c6a"),
	Accent:     lipgloss.Color("#8fc279"),
	Background: lipgloss.Color("#f8f8f8"),
	Surface:    lipgloss.Color("#ffffff"),
	Text:       lipgloss.Color("#1f2a24"),
	Muted:      lipgloss.Color("#9ba8c0"),
	Success:    lipgloss.Color("#5dc796"),
	Error:      lipgloss.Color("#f04c56"),
}

var darkColors = Colors{
	Primary:    lipgloss.Color("#8fc279"),
	Secondary:  lipgloss.Color("#3a6b4a"),
	Accent:     lipgloss.Color("#5dc796"),
	Background: lipgloss.Color("#1c1b22"),
	Surface:    lipgloss.Color("#2b2a33"),
	Text:       lipgloss.Color("#fbfbfe"),
	Muted:      lipgloss.Color("#8f8f9d"),
	Success:    lipgloss.Color("#5dc796"),
	Error:      lipgloss.Color("#ff848b"),
}

var privateColors = Colors{
	Primary:    lipgloss.Color("#ac70ff"),
	Secondary:  lipgloss.Color("#7542e5"),
	Accent:     lipgloss.Color("#c689ff"),
	Background: lipgloss.Color("#25003e"),
	Surface:    lipgloss.Color("#341558"),
	Text:       lipgloss.Color("#fbfbfe"),
	Muted:      lipgloss.Color("#b0a3c9"),
	Success:    lipgloss.Color("#54ffbd"),
	Error:      lipgloss.Color("#ff6a75"),
}

// hasDarkBackground is swapped in tests.
var hasDarkBackground = termenv.HasDarkBackground

// Builtin returns the named themes shipped with the picker, in display order.
func Builtin(opts ...Option) []Theme {
	build := func(name string, colors Colors) Theme {
		base := []Option{WithName(name), WithColors(colors)}
		return New(append(base, opts...)...)
	}
	return []Theme{
		build(NameLight, lightColors),
		build(NameDark, darkColors),
		build(NamePrivate, privateColors),
	}
}

// ResolveName maps "auto" onto light or dark based on the terminal background.
func ResolveName(name string) string {
	if name != NameAuto && name != "" {
		return name
	}
	if hasDarkBackground() {
		return NameDark
	}
	return NameLight
}
