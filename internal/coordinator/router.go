package coordinator

// Route names a destination the router can move to.
type Route int

const (
	RouteNone Route = iota
	RouteSearchSettings
)

// TransitionKind enumerates the transitions a Router records.
type TransitionKind string

const (
	TransitionDismiss  TransitionKind = "dismiss"
	TransitionNavigate TransitionKind = "navigate"
)

// Transition is one queued navigation request.
type Transition struct {
	Kind     TransitionKind
	Route    Route
	Animated bool
}

// Router is the Coordinator used by the terminal host. Requests are queued
// rather than executed so that screens can call it from inside an update
// without re-entering the program loop; the host drains the queue afterwards.
type Router struct {
	pending []Transition
	history []Transition
}

// NewRouter creates an idle router.
func NewRouter() *Router {
	return &Router{}
}

// DismissModal queues a dismissal of the presented modal.
func (r *Router) DismissModal(animated bool) {
	r.push(Transition{Kind: TransitionDismiss, Animated: animated})
}

// NavigateToSearchSettings queues navigation to the search settings screen.
func (r *Router) NavigateToSearchSettings(animated bool) {
	r.push(Transition{Kind: TransitionNavigate, Route: RouteSearchSettings, Animated: animated})
}

func (r *Router) push(t Transition) {
	r.pending = append(r.pending, t)
	r.history = append(r.history, t)
}

// Drain returns and clears queued transitions in request order.
func (r *Router) Drain() []Transition {
	if len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = nil
	return out
}

// History returns every transition requested so far.
func (r *Router) History() []Transition {
	return append([]Transition(nil), r.history...)
}
