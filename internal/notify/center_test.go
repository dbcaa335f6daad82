package notify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCenterDeliversByName(t *testing.T) {
	c := NewCenter()

	var got []string
	c.Subscribe("theme.changed", func() { got = append(got, "first") })
	c.Subscribe("other", func() { got = append(got, "other") })
	c.Subscribe("theme.changed", func() { got = append(got, "second") })

	c.Post("theme.changed")

	want := []string{"first", "second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Post(theme.changed) delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestCenterUnsubscribe(t *testing.T) {
	c := NewCenter()

	calls := 0
	token := c.Subscribe("theme.changed", func() { calls++ })
	c.Unsubscribe(token)
	c.Unsubscribe(token)
	c.Post("theme.changed")

	if calls != 0 {
		t.Errorf("observer calls after Unsubscribe = %d, want 0", calls)
	}
	if got := c.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestCenterObserverRemovedDuringPost(t *testing.T) {
	c := NewCenter()

	var second Token
	secondCalls := 0
	c.Subscribe("theme.changed", func() { c.Unsubscribe(second) })
	second = c.Subscribe("theme.changed", func() { secondCalls++ })

	c.Post("theme.changed")

	if secondCalls != 0 {
		t.Errorf("removed observer calls = %d, want 0", secondCalls)
	}
}
