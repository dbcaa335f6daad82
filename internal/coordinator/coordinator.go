package coordinator

import "weak"

// Coordinator performs screen transitions on behalf of a presented screen.
type Coordinator interface {
	DismissModal(animated bool)
	NavigateToSearchSettings(animated bool)
}

// Handle is a non-owning reference to a Coordinator. The coordinator's
// lifetime is independent of the screen holding the handle; once it has been
// collected the handle resolves to nothing and calls become no-ops.
type Handle struct {
	resolve func() Coordinator
}

// Weak returns a handle that does not keep c alive.
func Weak[T any, P interface {
	*T
	Coordinator
}](c P) Handle {
	if c == nil {
		return Handle{}
	}
	ptr := weak.Make((*T)(c))
	return Handle{resolve: func() Coordinator {
		if v := ptr.Value(); v != nil {
			return P(v)
		}
		return nil
	}}
}

// Get resolves the coordinator if it is still alive.
func (h Handle) Get() (Coordinator, bool) {
	if h.resolve == nil {
		return nil, false
	}
	c := h.resolve()
	return c, c != nil
}

// DismissModal forwards to the coordinator, dropping the call if it is gone.
func (h Handle) DismissModal(animated bool) bool {
	c, ok := h.Get()
	if !ok {
		return false
	}
	c.DismissModal(animated)
	return true
}

// NavigateToSearchSettings forwards to the coordinator, dropping the call if
// it is gone.
func (h Handle) NavigateToSearchSettings(animated bool) bool {
	c, ok := h.Get()
	if !ok {
		return false
	}
	c.NavigateToSearchSettings(animated)
	return true
}
