package theme

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type countingPoster struct {
	posts []string
}

func (p *countingPoster) Post(name string) {
	p.posts = append(p.posts, name)
}

func TestManagerNamesInRegistrationOrder(t *testing.T) {
	m := NewManager(WithThemes(New(WithName("sepia"))))

	want := []string{NameLight, NameDark, NamePrivate, "sepia"}
	if diff := cmp.Diff(want, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerCurrentThemePerWindow(t *testing.T) {
	m := NewManager(WithDefaultTheme(NameDark))

	if got := m.CurrentTheme(DefaultWindow).Name(); got != NameDark {
		t.Fatalf("CurrentTheme(%q) = %q, want %q", DefaultWindow, got, NameDark)
	}

	if err := m.SetTheme("private-window", NamePrivate); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	if got := m.CurrentTheme("private-window").Name(); got != NamePrivate {
		t.Errorf("CurrentTheme(private-window) = %q, want %q", got, NamePrivate)
	}
	if got := m.CurrentTheme(DefaultWindow).Name(); got != NameDark {
		t.Errorf("CurrentTheme(%q) after override elsewhere = %q, want %q", DefaultWindow, got, NameDark)
	}

	m.ClearOverride("private-window")
	if got := m.CurrentTheme("private-window").Name(); got != NameDark {
		t.Errorf("CurrentTheme(private-window) after clear = %q, want %q", got, NameDark)
	}
}

func TestManagerUnknownThemes(t *testing.T) {
	m := NewManager(WithDefaultTheme("neon"))

	if got := m.CurrentTheme(DefaultWindow).Name(); got != NameLight {
		t.Errorf("CurrentTheme() with unknown default = %q, want %q", got, NameLight)
	}

	err := m.SetTheme(DefaultWindow, "neon")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("SetTheme(neon) error = %v, want %v", err, ErrUnknownTheme)
	}

	if got := m.Named("neon").Name(); got != NameLight {
		t.Errorf("Named(neon) = %q, want fallback %q", got, NameLight)
	}
}

func TestManagerPostsOnlyOnChange(t *testing.T) {
	poster := &countingPoster{}
	m := NewManager(WithPoster(poster))

	if err := m.SetTheme(DefaultWindow, NameLight); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := m.SetTheme(DefaultWindow, NameDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := m.SetTheme(DefaultWindow, NameDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	want := []string{ChangedNotification}
	if diff := cmp.Diff(want, poster.posts); diff != "" {
		t.Errorf("posted notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerCycleWraps(t *testing.T) {
	m := NewManager()

	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, m.Cycle(DefaultWindow).Name())
	}

	want := []string{NameDark, NamePrivate, NameLight, NameDark}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cycle() sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNameAuto(t *testing.T) {
	original := hasDarkBackground
	t.Cleanup(func() { hasDarkBackground = original })

	tests := []struct {
		name string
		in   string
		dark bool
		want string
	}{
		{name: "explicit", in: NamePrivate, dark: true, want: NamePrivate},
		{name: "auto dark", in: NameAuto, dark: true, want: NameDark},
		{name: "auto light", in: NameAuto, dark: false, want: NameLight},
		{name: "empty", in: "", dark: true, want: NameDark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hasDarkBackground = func() bool { return tc.dark }
			if got := ResolveName(tc.in); got != tc.want {
				t.Errorf("ResolveName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
