package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvictor struct {
	mu   sync.Mutex
	ttls []time.Duration
}

func (f *fakeEvictor) EvictIdle(ttl time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls = append(f.ttls, ttl)
	return 0
}

type failingTask struct{ err error }

func (f failingTask) Type() string                  { return "failing" }
func (f failingTask) Execute(context.Context) error { return f.err }

func TestImageSweepTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	imageStore := memstore.NewImageStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	old, err := domain.NewImage([]byte("old"), "image/png")
	require.NoError(t, err)
	old.CreatedAt = now.Add(-48 * time.Hour)
	require.NoError(t, imageStore.Save(ctx, old))

	recent, err := domain.NewImage([]byte("new"), "image/png")
	require.NoError(t, err)
	recent.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, imageStore.Save(ctx, recent))

	sweep := NewImageSweepTask(imageStore, 24*time.Hour)
	sweep.now = func() time.Time { return now }

	require.NoError(t, sweep.Execute(ctx))
	assert.Equal(t, 1, imageStore.Len())

	_, err = imageStore.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestSessionSweepTask(t *testing.T) {
	t.Parallel()

	evictor := &fakeEvictor{}
	sweep := NewSessionSweepTask(evictor, 2*time.Hour)

	require.NoError(t, sweep.Execute(context.Background()))
	assert.Equal(t, []time.Duration{2 * time.Hour}, evictor.ttls)
	assert.Equal(t, TaskTypeSessionSweep, sweep.Type())
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	evictor := &fakeEvictor{}
	scheduler := NewScheduler("0 */15 * * * *", nil,
		failingTask{err: boom},
		NewSessionSweepTask(evictor, time.Hour))

	var failed []error
	scheduler.SetErrorHandler(func(_ Task, err error) {
		failed = append(failed, err)
	})

	scheduler.RunOnce(context.Background())

	assert.Equal(t, []error{boom}, failed)
	assert.Len(t, evictor.ttls, 1)
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	t.Parallel()

	scheduler := NewScheduler("not a schedule", nil)
	assert.Error(t, scheduler.Start())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	evictor := &fakeEvictor{}
	scheduler := NewScheduler("* * * * * *", nil, NewSessionSweepTask(evictor, time.Hour))
	require.NoError(t, scheduler.Start())

	assert.Eventually(t, func() bool {
		evictor.mu.Lock()
		defer evictor.mu.Unlock()
		return len(evictor.ttls) > 0
	}, 3*time.Second, 50*time.Millisecond)

	scheduler.Stop()
}

type blockingTask struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	runs    int
}

func (b *blockingTask) Type() string { return "blocking" }

func (b *blockingTask) Execute(context.Context) error {
	b.mu.Lock()
	b.runs++
	first := b.runs == 1
	b.mu.Unlock()
	if first {
		close(b.started)
		<-b.release
	}
	return nil
}

func TestScheduler_SkipsTickWhilePassRunning(t *testing.T) {
	t.Parallel()

	blocking := &blockingTask{started: make(chan struct{}), release: make(chan struct{})}
	scheduler := NewScheduler("0 */15 * * * *", nil, blocking)

	done := make(chan struct{})
	go func() {
		scheduler.job.Run()
		close(done)
	}()
	<-blocking.started

	scheduler.job.Run()
	close(blocking.release)
	<-done

	blocking.mu.Lock()
	defer blocking.mu.Unlock()
	assert.Equal(t, 1, blocking.runs)
}
