package log

import (
	"fmt"
	"time"
)

// SessionSummary pairs a recorded session with what the history browser
// shows about it.
type SessionSummary struct {
	Session      *LogSession
	FilePath     string
	RelativeTime string
}

// Outcome describes how the session's picker was closed, judged by the last
// dismiss or navigate event.
func (s SessionSummary) Outcome() string {
	for i := len(s.Session.Events) - 1; i >= 0; i-- {
		switch s.Session.Events[i].Type {
		case EventDismiss:
			return "dismissed"
		case EventNavigateSettings:
			return "opened settings"
		}
	}
	return "closed"
}

// GetSessionSummaries reads up to limit sessions, newest first.
func GetSessionSummaries(limit int) ([]SessionSummary, error) {
	return sessionSummaries(limit, time.Now())
}

func sessionSummaries(limit int, now time.Time) ([]SessionSummary, error) {
	files, err := sessionFiles(limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			continue
		}

		summaries = append(summaries, SessionSummary{
			Session:      session,
			FilePath:     file,
			RelativeTime: formatRelativeTime(session.Metadata.Timestamp, now),
		})
	}

	return summaries, nil
}

func formatRelativeTime(t, now time.Time) string {
	duration := now.Sub(t)
	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case duration < 7*24*time.Hour:
		days := int(duration.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
