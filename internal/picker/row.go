package picker

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyTitle is returned when a row is built without a visible title.
var ErrEmptyTitle = errors.New("row title must not be empty")

// Row is one selectable line of the picker. Rows are immutable once built;
// fields are only reachable through accessors.
type Row struct {
	title       string
	description string
	icon        string
	disabled    bool
	active      bool
	disclosure  bool
	a11yLabel   string
	a11yHint    string
	a11yID      string
	action      func()
}

// RowOption configures a Row during construction.
type RowOption func(*Row)

// WithDescription sets the secondary text shown after the title.
func WithDescription(description string) RowOption {
	return func(r *Row) { r.description = description }
}

// WithIcon sets the theme icon key rendered before the title.
func WithIcon(name string) RowOption {
	return func(r *Row) { r.icon = name }
}

// WithDisabled marks the row as not selectable.
func WithDisabled() RowOption {
	return func(r *Row) { r.disabled = true }
}

// WithActive marks the row as the current choice.
func WithActive() RowOption {
	return func(r *Row) { r.active = true }
}

// WithDisclosure adds a disclosure chevron.
func WithDisclosure() RowOption {
	return func(r *Row) { r.disclosure = true }
}

// WithAccessibilityLabel overrides the spoken label. Defaults to the title.
func WithAccessibilityLabel(label string) RowOption {
	return func(r *Row) { r.a11yLabel = label }
}

// WithAccessibilityHint sets the optional spoken hint.
func WithAccessibilityHint(hint string) RowOption {
	return func(r *Row) { r.a11yHint = hint }
}

// WithAccessibilityID overrides the identifier. Defaults to a slug of the title.
func WithAccessibilityID(id string) RowOption {
	return func(r *Row) { r.a11yID = id }
}

// WithAction sets the function run when the row is activated.
func WithAction(fn func()) RowOption {
	return func(r *Row) { r.action = fn }
}

// NewRow builds a row. Titles that are empty or only whitespace are rejected.
func NewRow(title string, opts ...RowOption) (Row, error) {
	if strings.TrimSpace(title) == "" {
		return Row{}, ErrEmptyTitle
	}

	r := Row{title: title}
	for _, opt := range opts {
		opt(&r)
	}

	if strings.TrimSpace(r.a11yLabel) == "" {
		r.a11yLabel = title
	}
	if strings.TrimSpace(r.a11yID) == "" {
		r.a11yID = slug(title)
	}
	return r, nil
}

// MustRow is NewRow for literal rows; it panics on an empty title.
func MustRow(title string, opts ...RowOption) Row {
	r, err := NewRow(title, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Row) Title() string              { return r.title }
func (r Row) Description() string        { return r.description }
func (r Row) Icon() string               { return r.icon }
func (r Row) Enabled() bool              { return !r.disabled }
func (r Row) Active() bool               { return r.active }
func (r Row) HasDisclosure() bool        { return r.disclosure }
func (r Row) AccessibilityLabel() string { return r.a11yLabel }
func (r Row) AccessibilityHint() string  { return r.a11yHint }
func (r Row) AccessibilityID() string    { return r.a11yID }
func (r Row) HasAction() bool            { return r.action != nil }

// Activate runs the row's action and reports whether one ran. Rows without
// an action, and disabled rows, do nothing.
func (r Row) Activate() bool {
	if r.action == nil || r.disabled {
		return false
	}
	r.action()
	return true
}

// slug turns a title into a stable identifier: lower case, runs of other
// characters collapsed to a single dash.
func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, c := range strings.ToLower(title) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(c)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	id := strings.TrimSuffix(b.String(), "-")
	if id == "" {
		return "row"
	}
	return id
}

// Section is an ordered group of rows rendered together.
type Section struct {
	header string
	rows   []Row
}

// NewSection groups rows in display order. The slice is copied.
func NewSection(rows ...Row) Section {
	return Section{rows: append([]Row(nil), rows...)}
}

// WithHeader returns a copy of the section with a caption.
func (s Section) WithHeader(header string) Section {
	s.header = header
	return s
}

// Header returns the optional caption.
func (s Section) Header() string { return s.header }

// Len reports the number of rows.
func (s Section) Len() int { return len(s.rows) }

// Rows returns a copy of the rows in display order.
func (s Section) Rows() []Row {
	return append([]Row(nil), s.rows...)
}
