package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func resetLogging(t *testing.T) {
	t.Helper()
	original := loggingEnabled
	t.Cleanup(func() {
		loggingEnabled = original
		currentSession = nil
	})
}

func TestLogSession(t *testing.T) {
	resetLogging(t)
	loggingEnabled = true

	if err := StartSession("search-picker", []string{"--theme", "dark"}); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	if currentSession == nil {
		t.Fatal("StartSession() did not create a session")
	}

	want := []string{"search-picker", "--theme", "dark"}
	if diff := cmp.Diff(want, currentSession.Metadata.CommandArgs); diff != "" {
		t.Errorf("CommandArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestLogEvents(t *testing.T) {
	resetLogging(t)
	loggingEnabled = true

	if err := StartSession("search-picker", nil); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	rec := Recorder{Screen: "search-picker"}
	rec.Record(EventPresent, "", true)
	rec.Record(EventActivateRow, "Search engine 2", true)
	rec.Record(EventDismiss, "", false)

	gotTypes := make([]EventType, 0, len(currentSession.Events))
	for _, ev := range currentSession.Events {
		gotTypes = append(gotTypes, ev.Type)
		if ev.Screen != "search-picker" {
			t.Errorf("event %s screen = %q, want %q", ev.ID, ev.Screen, "search-picker")
		}
	}
	wantTypes := []EventType{EventPresent, EventActivateRow, EventDismiss}
	if diff := cmp.Diff(wantTypes, gotTypes); diff != "" {
		t.Errorf("event types mismatch (-want +got):\n%s", diff)
	}

	updateStats()

	meta := currentSession.Metadata
	if meta.TotalEvents != 3 || meta.DeliveredEvents != 2 || meta.DroppedEvents != 1 {
		t.Errorf("stats = (%d, %d, %d), want (3, 2, 1)", meta.TotalEvents, meta.DeliveredEvents, meta.DroppedEvents)
	}
}

func TestEndSessionWritesReadableFile(t *testing.T) {
	resetLogging(t)
	t.Setenv("HOME", t.TempDir())
	loggingEnabled = true

	if err := StartSession("search-picker", nil); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	LogEvent(EventNavigateSettings, "search-picker", "", true)

	if err := EndSession(); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if currentSession != nil {
		t.Error("EndSession() left currentSession set")
	}

	sessions, err := ReadSessions(0)
	if err != nil {
		t.Fatalf("ReadSessions() error = %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ReadSessions() returned %d sessions, want 1", len(sessions))
	}
	if got := sessions[0].Metadata.TotalEvents; got != 1 {
		t.Errorf("TotalEvents = %d, want 1", got)
	}
	if got := sessions[0].Events[0].Type; got != EventNavigateSettings {
		t.Errorf("Events[0].Type = %q, want %q", got, EventNavigateSettings)
	}
}

func TestReadSessionsSkipsCorruptFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := LogDir()
	if err != nil {
		t.Fatalf("LogDir() error = %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2020-01-01_000000.000.json"), []byte("{"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteSession(&LogSession{Metadata: SessionMetadata{SessionID: "ok"}}); err != nil {
		t.Fatalf("WriteSession() error = %v", err)
	}

	sessions, err := ReadSessions(10)
	if err != nil {
		t.Fatalf("ReadSessions() error = %v", err)
	}
	if len(sessions) != 1 || sessions[0].Metadata.SessionID != "ok" {
		t.Errorf("ReadSessions() = %v, want only session %q", sessions, "ok")
	}
}

func TestReadSessionsMissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	sessions, err := ReadSessions(5)
	if err != nil {
		t.Fatalf("ReadSessions() error = %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("ReadSessions() returned %d sessions, want 0", len(sessions))
	}
}

func TestLoggingDisabled(t *testing.T) {
	resetLogging(t)
	t.Setenv("HOME", t.TempDir())

	Initialize(false, 30)

	if err := StartSession("search-picker", nil); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if currentSession != nil {
		t.Error("StartSession() created a session while logging is disabled")
	}

	LogEvent(EventDismiss, "search-picker", "", true)
	if currentSession != nil {
		t.Error("LogEvent() created a session while logging is disabled")
	}

	if err := EndSession(); err != nil {
		t.Errorf("EndSession() with logging disabled error = %v, want nil", err)
	}
}

func TestInitializeRemovesExpiredLogs(t *testing.T) {
	resetLogging(t)
	t.Setenv("HOME", t.TempDir())

	dir, err := LogDir()
	if err != nil {
		t.Fatalf("LogDir() error = %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	oldPath := filepath.Join(dir, "old.json")
	freshPath := filepath.Join(dir, "fresh.json")
	for _, p := range []string{oldPath, freshPath} {
		if err := os.WriteFile(p, []byte("{}"), 0644); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", p, err)
		}
	}
	stale := time.Now().AddDate(0, 0, -10)
	if err := os.Chtimes(oldPath, stale, stale); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	Initialize(true, 7)

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("Stat(%q) error = %v, want not exist", oldPath, err)
	}
	if _, err := os.Stat(freshPath); err != nil {
		t.Errorf("Stat(%q) error = %v, want nil", freshPath, err)
	}
}
