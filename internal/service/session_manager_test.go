package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStudio struct {
	content *domain.GeneratedContent
}

func (s stubStudio) Generate(context.Context, domain.GenerationRequest) (*domain.GeneratedContent, error) {
	return s.content, nil
}

func (s stubStudio) GenerateCarouselImages(
	context.Context,
	*domain.GeneratedContent,
	string,
	int,
) (*domain.ImageSet, error) {
	return &domain.ImageSet{}, nil
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, string, Notification) {}

func TestSessionManager_EvictIdle(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	manager := NewSessionManager(stubStudio{content: &domain.GeneratedContent{Content: "x"}}, discardNotifier{}, nil)
	manager.now = func() time.Time { return clock }

	stale := manager.Create()
	clock = clock.Add(90 * time.Minute)
	fresh := manager.Create()

	clock = clock.Add(45 * time.Minute)
	evicted := manager.EvictIdle(time.Hour)

	assert.Equal(t, 1, evicted)
	_, err := manager.Get(stale.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = manager.Get(fresh.ID())
	require.NoError(t, err)
}

func TestSessionManager_EvictIdleKeepsBusySessions(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	manager := NewSessionManager(stubStudio{}, discardNotifier{}, nil)
	manager.now = func() time.Time { return clock }

	busy := manager.Create()
	_, err := busy.begin(domain.GenerationRequest{Prompt: "x"})
	require.NoError(t, err)

	clock = clock.Add(3 * time.Hour)
	assert.Equal(t, 0, manager.EvictIdle(time.Hour))
	assert.Equal(t, 1, manager.Len())
}
