package coordinator

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandleForwardsToLiveCoordinator(t *testing.T) {
	router := NewRouter()
	h := Weak(router)

	if ok := h.DismissModal(true); !ok {
		t.Fatalf("DismissModal() forwarded = false, want true")
	}
	if ok := h.NavigateToSearchSettings(false); !ok {
		t.Fatalf("NavigateToSearchSettings() forwarded = false, want true")
	}

	want := []Transition{
		{Kind: TransitionDismiss, Animated: true},
		{Kind: TransitionNavigate, Route: RouteSearchSettings, Animated: false},
	}
	if diff := cmp.Diff(want, router.Drain()); diff != "" {
		t.Errorf("Drain() mismatch (-want +got):\n%s", diff)
	}
	if got := router.Drain(); got != nil {
		t.Errorf("second Drain() = %v, want nil", got)
	}
	if diff := cmp.Diff(want, router.History()); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroHandleIsNoOp(t *testing.T) {
	var h Handle

	if _, ok := h.Get(); ok {
		t.Errorf("zero Handle.Get() ok = true, want false")
	}
	if h.DismissModal(true) {
		t.Errorf("zero Handle.DismissModal() forwarded = true, want false")
	}

	var nilRouter *Router
	if _, ok := Weak(nilRouter).Get(); ok {
		t.Errorf("Weak(nil).Get() ok = true, want false")
	}
}

func TestHandleDoesNotKeepCoordinatorAlive(t *testing.T) {
	h := weakTransientRouter()

	runtime.GC()
	runtime.GC()

	if h.DismissModal(true) {
		t.Errorf("DismissModal() on collected coordinator forwarded = true, want false")
	}
}

func weakTransientRouter() Handle {
	r := &Router{pending: make([]Transition, 0, 4)}
	return Weak(r)
}
