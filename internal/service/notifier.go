package service

import (
	"context"
	"log/slog"
)

// NotificationLevel classifies a user-facing notification.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a short user-facing message about a session outcome.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
}

// Notifier receives notifications raised by sessions.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n Notification)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier; nil uses the default logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, sessionID string, notification Notification) {
	level := slog.LevelInfo
	if notification.Level == NotificationError {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, notification.Title,
		"session_id", sessionID,
		"level", notification.Level,
		"message", notification.Message)
}
