package mocks

import (
	"context"
	"sync"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
)

// MockNotifier implements service.Notifier and records every notification
type MockNotifier struct {
	mu            sync.Mutex
	notifications []service.Notification
	sessionIDs    []string
}

var _ service.Notifier = (*MockNotifier)(nil)

// Notify implements the service.Notifier interface
func (m *MockNotifier) Notify(_ context.Context, sessionID string, n service.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
	m.sessionIDs = append(m.sessionIDs, sessionID)
}

// Notifications returns a copy of the notifications received so far.
func (m *MockNotifier) Notifications() []service.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Notification(nil), m.notifications...)
}

// Last returns the most recent notification and whether there was one.
func (m *MockNotifier) Last() (service.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.notifications) == 0 {
		return service.Notification{}, false
	}
	return m.notifications[len(m.notifications)-1], true
}
