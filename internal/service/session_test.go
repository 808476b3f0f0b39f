package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/mocks"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(
	t *testing.T,
	text *mocks.MockTextGenerator,
	images *mocks.MockImageGenerator,
) (*service.SessionManager, *mocks.MockNotifier) {
	t.Helper()
	studio, _ := newStudio(t, text, images)
	notifier := &mocks.MockNotifier{}
	return service.NewSessionManager(studio, notifier, nil), notifier
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to service.State
		want     bool
	}{
		{service.StateIdle, service.StateGenerating, true},
		{service.StateIdle, service.StateSuccess, false},
		{service.StateGenerating, service.StateSuccess, true},
		{service.StateGenerating, service.StateFailed, true},
		{service.StateGenerating, service.StateGenerating, true},
		{service.StateSuccess, service.StateGenerating, true},
		{service.StateFailed, service.StateGenerating, true},
		{service.StateSuccess, service.StateFailed, false},
		{service.StateFailed, service.StateIdle, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSession_GenerateSuccess(t *testing.T) {
	t.Parallel()

	manager, notifier := newManager(t,
		mocks.NewMockTextGeneratorWithResponse("Great morning tips! #morning #routine"),
		mocks.NewMockImageGenerator())
	session := manager.Create()
	assert.Equal(t, service.StateIdle, session.State())

	outcome, err := session.Generate(context.Background(), postRequest())
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.False(t, outcome.Superseded)
	assert.Equal(t, 37, outcome.Content.CharacterCount)

	snap := session.Snapshot()
	assert.Equal(t, service.StateSuccess, snap.State)
	assert.Equal(t, outcome, snap.Outcome)
	require.NotNil(t, snap.Request)
	assert.Equal(t, "Give me a post about morning routines", snap.Request.Prompt)

	note, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, service.NotificationSuccess, note.Level)
}

func TestSession_GenerateFailureBecomesState(t *testing.T) {
	t.Parallel()

	manager, notifier := newManager(t, mocks.MockTextGeneratorThatFails(), mocks.NewMockImageGenerator())
	session := manager.Create()

	outcome, err := session.Generate(context.Background(), postRequest())
	require.NoError(t, err, "generation failures are reported through the outcome")

	assert.False(t, outcome.Success)
	assert.Equal(t, service.FailurePlaceholder, outcome.Content.Content)
	assert.Empty(t, outcome.Content.Hashtags)
	assert.Equal(t, service.StateFailed, session.State())

	note, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, service.NotificationError, note.Level)
	assert.Equal(t, service.FailurePlaceholder, note.Message)
}

func TestSession_RegenerateFromFailed(t *testing.T) {
	t.Parallel()

	text := mocks.MockTextGeneratorThatFails()
	manager, _ := newManager(t, text, mocks.NewMockImageGenerator())
	session := manager.Create()

	_, err := session.Generate(context.Background(), postRequest())
	require.NoError(t, err)
	require.Equal(t, service.StateFailed, session.State())

	text.Err = nil
	text.Response = "Second try #retry"

	outcome, err := session.Generate(context.Background(), postRequest())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, service.StateSuccess, session.State())
	assert.Equal(t, 2, text.Calls())
}

func TestSession_GenerateValidationLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	text := mocks.NewMockTextGeneratorWithResponse("unused")
	manager, notifier := newManager(t, text, mocks.NewMockImageGenerator())
	session := manager.Create()

	req := postRequest()
	req.MaxLength = 10

	outcome, err := session.Generate(context.Background(), req)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, service.StateIdle, session.State())
	assert.Equal(t, 0, text.Calls())
	assert.Empty(t, notifier.Notifications())
}

func TestSession_LatestRequestWins(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})

	text := &mocks.MockTextGenerator{
		GenerateFn: func(_ context.Context, prompt string, _ float64, _ int) (string, error) {
			if strings.Contains(prompt, "Topic: slow") {
				close(started)
				<-release
				return "slow answer #old", nil
			}
			return "fast answer #new", nil
		},
	}
	manager, notifier := newManager(t, text, mocks.NewMockImageGenerator())
	session := manager.Create()

	slow := postRequest()
	slow.Prompt = "slow topic"
	fast := postRequest()
	fast.Prompt = "fast topic"

	type result struct {
		outcome *service.Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := session.Generate(context.Background(), slow)
		done <- result{outcome, err}
	}()

	<-started
	assert.Equal(t, service.StateGenerating, session.State())

	fastOutcome, err := session.Generate(context.Background(), fast)
	require.NoError(t, err)
	assert.False(t, fastOutcome.Superseded)

	close(release)
	slowResult := <-done
	require.NoError(t, slowResult.err)
	assert.True(t, slowResult.outcome.Superseded)

	snap := session.Snapshot()
	assert.Equal(t, service.StateSuccess, snap.State)
	assert.Equal(t, "fast answer #new", snap.Outcome.Content.Content)
	assert.Equal(t, "fast topic", snap.Request.Prompt)
	assert.Len(t, notifier.Notifications(), 1, "superseded runs do not notify")
}

func TestSession_GenerateImages(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageGenerator()
	manager, notifier := newManager(t, mocks.NewMockTextGeneratorWithResponse(carouselOutput), images)
	session := manager.Create()

	_, err := session.GenerateImages(context.Background())
	assert.ErrorIs(t, err, service.ErrNoCarouselContent)

	outcome, err := session.Generate(context.Background(), carouselRequest(3))
	require.NoError(t, err)
	require.True(t, outcome.Success)

	set, err := session.GenerateImages(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Images, 3)
	assert.Equal(t, set, session.Snapshot().Images)

	note, _ := notifier.Last()
	assert.Equal(t, "Images generated", note.Title)
}

func TestSession_GenerateImagesFailure(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageGeneratorFailingOn(1)
	manager, notifier := newManager(t, mocks.NewMockTextGeneratorWithResponse(carouselOutput), images)
	session := manager.Create()

	_, err := session.Generate(context.Background(), carouselRequest(3))
	require.NoError(t, err)

	set, err := session.GenerateImages(context.Background())
	assert.Nil(t, set)
	assert.Error(t, err)
	assert.Nil(t, session.Snapshot().Images)
	assert.Equal(t, service.StateSuccess, session.State(), "image failures do not change the text outcome")

	note, _ := notifier.Last()
	assert.Equal(t, service.NotificationError, note.Level)
}

func TestSession_GenerateImagesFailureAfterRegenerateIsSilent(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	images := &mocks.MockImageGenerator{
		GenerateImageFn: func(context.Context, string) ([]byte, string, error) {
			close(started)
			<-release
			return nil, "", &generation.ImageGenerationError{StatusCode: 500, Body: "upstream error"}
		},
	}
	manager, notifier := newManager(t, mocks.NewMockTextGeneratorWithResponse(carouselOutput), images)
	session := manager.Create()

	_, err := session.Generate(context.Background(), carouselRequest(3))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := session.GenerateImages(context.Background())
		done <- err
	}()

	<-started
	_, err = session.Generate(context.Background(), carouselRequest(3))
	require.NoError(t, err)
	close(release)

	assert.Error(t, <-done)
	notes := notifier.Notifications()
	require.Len(t, notes, 2, "the stale image failure is not announced")
	assert.Equal(t, service.NotificationSuccess, notes[1].Level)
	assert.Nil(t, session.Snapshot().Images)
}

func TestSession_GenerateImagesRequiresCarousel(t *testing.T) {
	t.Parallel()

	manager, _ := newManager(t, mocks.NewMockTextGeneratorWithResponse("post text"), mocks.NewMockImageGenerator())
	session := manager.Create()

	_, err := session.Generate(context.Background(), postRequest())
	require.NoError(t, err)

	_, err = session.GenerateImages(context.Background())
	assert.ErrorIs(t, err, service.ErrNoCarouselContent)
}

func TestSessionManager_Get(t *testing.T) {
	t.Parallel()

	manager, _ := newManager(t, &mocks.MockTextGenerator{}, mocks.NewMockImageGenerator())
	session := manager.Create()

	got, err := manager.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, manager.Len())

	_, err = manager.Get(uuid.New())
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
