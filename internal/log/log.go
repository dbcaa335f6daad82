package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type EventType string

const (
	EventPresent          EventType = "present"
	EventAppear           EventType = "appear"
	EventDismiss          EventType = "dismiss"
	EventNavigateSettings EventType = "navigate_settings"
	EventActivateRow      EventType = "activate_row"
	EventThemeChange      EventType = "theme_change"
)

type EventLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Screen    string    `json:"screen"`
	Detail    string    `json:"detail,omitempty"`
	Delivered bool      `json:"delivered"`
}

type SessionMetadata struct {
	CommandArgs     []string  `json:"command_args"`
	Timestamp       time.Time `json:"timestamp"`
	SessionID       string    `json:"session_id"`
	TotalEvents     int       `json:"total_events"`
	DeliveredEvents int       `json:"delivered_events"`
	DroppedEvents   int       `json:"dropped_events"`
}

type LogSession struct {
	Metadata SessionMetadata `json:"metadata"`
	Events   []EventLog      `json:"events"`
}

// Global singleton session manager
var (
	currentSession *LogSession
	sessionMutex   sync.Mutex
	loggingEnabled = true
)

// StartSession initializes a new logging session
func StartSession(command string, args []string) error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled {
		return nil
	}

	now := time.Now()
	sessionID := fmt.Sprintf("%s_%03d", now.Format("20060102_150405"), now.Nanosecond()/1000000)

	currentSession = &LogSession{
		Metadata: SessionMetadata{
			CommandArgs: append([]string{command}, args...),
			Timestamp:   now,
			SessionID:   sessionID,
		},
		Events: []EventLog{},
	}

	return nil
}

// EndSession saves the current session to disk
func EndSession() error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return nil
	}

	updateStats()
	err := WriteSession(currentSession)
	currentSession = nil
	return err
}

// Recorder logs events for a single screen. It satisfies the event sink
// interfaces the screens depend on.
type Recorder struct {
	Screen string
}

// Record logs an event for the recorder's screen.
func (r Recorder) Record(eventType EventType, detail string, delivered bool) {
	LogEvent(eventType, r.Screen, detail, delivered)
}

// LogEvent logs a screen event to the current session. delivered is false
// when the event was dropped, for example because the coordinator was gone.
func LogEvent(eventType EventType, screen, detail string, delivered bool) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return
	}

	currentSession.Events = append(currentSession.Events, EventLog{
		ID:        fmt.Sprintf("%s_%d", currentSession.Metadata.SessionID, len(currentSession.Events)),
		Timestamp: time.Now(),
		Type:      eventType,
		Screen:    screen,
		Detail:    detail,
		Delivered: delivered,
	})
}

// updateStats updates the session statistics
func updateStats() {
	if currentSession == nil {
		return
	}

	delivered := 0
	for _, ev := range currentSession.Events {
		if ev.Delivered {
			delivered++
		}
	}

	currentSession.Metadata.TotalEvents = len(currentSession.Events)
	currentSession.Metadata.DeliveredEvents = delivered
	currentSession.Metadata.DroppedEvents = len(currentSession.Events) - delivered
}

// Initialize sets up the logging system with the given configuration
func Initialize(enabled bool, retentionDays int) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	loggingEnabled = enabled

	if enabled {
		if err := cleanupOldLogsUnsafe(retentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to clean up old logs: %v\n", err)
		}
	}
}

// LogDir returns the directory session files are written to.
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".search-picker", "logs"), nil
}

func GetLogPath() (string, error) {
	logDir, err := LogDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s.%03d.json",
		now.Format("2006-01-02_150405"),
		now.Nanosecond()/1000000)

	return filepath.Join(logDir, filename), nil
}

func WriteSession(session *LogSession) error {
	if session == nil {
		return nil
	}

	logPath, err := GetLogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(logPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}

	return nil
}

func ReadSession(logPath string) (*LogSession, error) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	var session LogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ReadSessions returns up to limit sessions, newest first. Corrupt files are
// skipped.
func ReadSessions(limit int) ([]*LogSession, error) {
	files, err := sessionFiles(limit)
	if err != nil {
		return nil, err
	}

	sessions := make([]*LogSession, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// sessionFiles lists up to limit session files, newest first. A limit of zero
// or less returns every file.
func sessionFiles(limit int) ([]string, error) {
	logDir, err := LogDir()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	files, err := filepath.Glob(filepath.Join(logDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}

	// File names start with a timestamp, so reverse lexical order is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// cleanupOldLogsUnsafe performs cleanup without acquiring mutex (assumes caller holds it)
func cleanupOldLogsUnsafe(retentionDays int) error {
	logDir, err := LogDir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(logDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to remove old log file %s: %v\n", file, err)
				continue
			}
		}
	}

	return nil
}
