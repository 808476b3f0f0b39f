package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/metrics"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
)

// Task names
const (
	TaskTypeImageSweep   = "image_sweep"
	TaskTypeSessionSweep = "session_sweep"
)

// Task is a unit of periodic maintenance work.
type Task interface {
	// Type returns the task type identifier
	Type() string

	// Execute runs the task logic once
	Execute(ctx context.Context) error
}

// SessionEvictor removes sessions idle for longer than ttl.
type SessionEvictor interface {
	EvictIdle(ttl time.Duration) int
}

// ImageSweepTask deletes stored images older than TTL.
type ImageSweepTask struct {
	store store.ImageStore
	ttl   time.Duration
	now   func() time.Time
}

// NewImageSweepTask creates an ImageSweepTask.
func NewImageSweepTask(imageStore store.ImageStore, ttl time.Duration) *ImageSweepTask {
	return &ImageSweepTask{store: imageStore, ttl: ttl, now: time.Now}
}

// Type implements Task.
func (t *ImageSweepTask) Type() string { return TaskTypeImageSweep }

// Execute implements Task.
func (t *ImageSweepTask) Execute(ctx context.Context) error {
	deleted, err := t.store.DeleteOlderThan(ctx, t.now().Add(-t.ttl))
	if err != nil {
		return fmt.Errorf("failed to sweep images: %w", err)
	}
	metrics.AddImagesSwept(deleted)
	return nil
}

// SessionSweepTask evicts idle sessions.
type SessionSweepTask struct {
	sessions SessionEvictor
	ttl      time.Duration
}

// NewSessionSweepTask creates a SessionSweepTask.
func NewSessionSweepTask(sessions SessionEvictor, ttl time.Duration) *SessionSweepTask {
	return &SessionSweepTask{sessions: sessions, ttl: ttl}
}

// Type implements Task.
func (t *SessionSweepTask) Type() string { return TaskTypeSessionSweep }

// Execute implements Task.
func (t *SessionSweepTask) Execute(_ context.Context) error {
	t.sessions.EvictIdle(t.ttl)
	return nil
}
