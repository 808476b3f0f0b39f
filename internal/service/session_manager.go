package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/metrics"
	"github.com/google/uuid"
)

// SessionManager keeps sessions in memory, keyed by ID.
type SessionManager struct {
	studio   ContentStudio
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionManager creates a SessionManager. A nil notifier falls back to
// a LogNotifier.
func NewSessionManager(studio ContentStudio, notifier Notifier, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &SessionManager{
		studio:   studio,
		notifier: notifier,
		logger:   logger.With("component", "session_manager"),
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new idle session.
func (m *SessionManager) Create() *Session {
	session := newSession(uuid.New(), m.studio, m.notifier, m.logger, m.now)

	m.mu.Lock()
	m.sessions[session.ID()] = session
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(count)
	m.logger.Debug("session created", "session_id", session.ID())
	return session
}

// Get returns the session with the given ID or ErrSessionNotFound.
func (m *SessionManager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle removes sessions whose last activity is older than ttl. Sessions
// with a generation in flight are kept. It returns the number evicted.
func (m *SessionManager) EvictIdle(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	evicted := 0
	for id, session := range m.sessions {
		last, busy := session.lastActive()
		if busy || !last.Before(cutoff) {
			continue
		}
		delete(m.sessions, id)
		evicted++
	}
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(count)
	if evicted > 0 {
		m.logger.Info("evicted idle sessions", "evicted", evicted, "remaining", count)
	}
	return evicted
}
