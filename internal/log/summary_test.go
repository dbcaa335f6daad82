package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeSessionFile(t *testing.T, dir, name string, session LogSession) {
	t.Helper()
	data, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestSessionSummariesNewestFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir, err := LogDir()
	if err != nil {
		t.Fatalf("LogDir() error = %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	writeSessionFile(t, dir, "2024-05-10_110000.000.json", LogSession{
		Metadata: SessionMetadata{SessionID: "older", Timestamp: now.Add(-time.Hour)},
	})
	writeSessionFile(t, dir, "2024-05-10_115930.000.json", LogSession{
		Metadata: SessionMetadata{SessionID: "newer", Timestamp: now.Add(-30 * time.Second)},
	})

	summaries, err := sessionSummaries(0, now)
	if err != nil {
		t.Fatalf("sessionSummaries() error = %v", err)
	}

	var got []string
	for _, s := range summaries {
		got = append(got, s.Session.Metadata.SessionID+" "+s.RelativeTime)
	}
	want := []string{"newer just now", "older 1 hour ago"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summaries mismatch (-want +got):\n%s", diff)
	}

	limited, err := sessionSummaries(1, now)
	if err != nil {
		t.Fatalf("sessionSummaries(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].Session.Metadata.SessionID != "newer" {
		t.Errorf("sessionSummaries(1) = %d summaries, want only %q", len(limited), "newer")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 10 * time.Second, want: "just now"},
		{ago: time.Minute, want: "1 minute ago"},
		{ago: 5 * time.Minute, want: "5 minutes ago"},
		{ago: 3 * time.Hour, want: "3 hours ago"},
		{ago: 24 * time.Hour, want: "1 day ago"},
		{ago: 30 * 24 * time.Hour, want: "Apr 10, 2024"},
	}

	for _, tc := range tests {
		if got := formatRelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Errorf("formatRelativeTime(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestSessionSummaryOutcome(t *testing.T) {
	tests := []struct {
		name   string
		events []EventType
		want   string
	}{
		{name: "empty", want: "closed"},
		{name: "dismissed", events: []EventType{EventPresent, EventAppear, EventDismiss}, want: "dismissed"},
		{name: "settings", events: []EventType{EventPresent, EventActivateRow, EventNavigateSettings}, want: "opened settings"},
		{name: "interrupted", events: []EventType{EventPresent, EventThemeChange}, want: "closed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			session := &LogSession{}
			for _, ev := range tc.events {
				session.Events = append(session.Events, EventLog{Type: ev})
			}
			if got := (SessionSummary{Session: session}).Outcome(); got != tc.want {
				t.Errorf("Outcome() = %q, want %q", got, tc.want)
			}
		})
	}
}
