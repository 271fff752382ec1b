package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a short user-facing message shown in the status line.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}
