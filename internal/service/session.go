package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/logger"
	"github.com/google/uuid"
)

// FailurePlaceholder is the content shown when a generation fails.
const FailurePlaceholder = "Error generating content. Please try again."

// State is a session's position in the request lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// transitions lists the states reachable from each state. Generating may
// re-enter itself when a newer request replaces one still in flight.
var transitions = map[State][]State{
	StateIdle:       {StateGenerating},
	StateGenerating: {StateGenerating, StateSuccess, StateFailed},
	StateSuccess:    {StateGenerating},
	StateFailed:     {StateGenerating},
}

// CanTransition reports whether the lifecycle allows moving from one state
// to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Outcome is the result of one generation run through a session.
type Outcome struct {
	Content *domain.GeneratedContent `json:"content"`
	Success bool                     `json:"success"`
	// Superseded is set when a newer request started before this one
	// finished; the session state was left to the newer run.
	Superseded bool `json:"superseded,omitempty"`
}

// Snapshot is a point-in-time copy of a session's state.
type Snapshot struct {
	ID           uuid.UUID                 `json:"id"`
	State        State                     `json:"state"`
	Request      *domain.GenerationRequest `json:"request,omitempty"`
	Outcome      *Outcome                  `json:"outcome,omitempty"`
	Images       *domain.ImageSet          `json:"images,omitempty"`
	Notification *Notification             `json:"notification,omitempty"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// Session holds the state of one user's studio: the last request, its
// outcome and any carousel images derived from it. Errors from the studio
// are converted to state here and never leave Generate.
type Session struct {
	id       uuid.UUID
	studio   ContentStudio
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu           sync.Mutex
	state        State
	seq          uint64
	request      *domain.GenerationRequest
	outcome      *Outcome
	images       *domain.ImageSet
	notification *Notification
	updatedAt    time.Time
}

func newSession(
	id uuid.UUID,
	studio ContentStudio,
	notifier Notifier,
	logger *slog.Logger,
	now func() time.Time,
) *Session {
	return &Session{
		id:        id,
		studio:    studio,
		notifier:  notifier,
		logger:    logger.With("session_id", id.String()),
		now:       now,
		state:     StateIdle,
		updatedAt: now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.id,
		State:        s.state,
		Request:      s.request,
		Outcome:      s.outcome,
		Images:       s.images,
		Notification: s.notification,
		UpdatedAt:    s.updatedAt,
	}
}

// lastActive returns the time of the last state change and whether a run
// is in flight.
func (s *Session) lastActive() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt, s.state == StateGenerating
}

// Generate runs req through the studio and records the outcome. Validation
// errors are returned without touching the session. Any other failure
// becomes a Failed state holding the placeholder content.
//
// If another Generate call starts before this one completes, the later call
// owns the session state and this call's outcome is returned with
// Superseded set.
func (s *Session) Generate(ctx context.Context, req domain.GenerationRequest) (*Outcome, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	seq, err := s.begin(req)
	if err != nil {
		return nil, err
	}

	content, genErr := s.studio.Generate(ctx, req)

	outcome := &Outcome{Content: content, Success: genErr == nil}
	if genErr != nil {
		log.WarnContext(ctx, "session generation failed", "error", genErr)
		outcome.Content = failureContent(req)
	}

	var note Notification
	if outcome.Success {
		note = Notification{
			Level:   NotificationSuccess,
			Title:   "Content generated",
			Message: fmt.Sprintf("Your %s is ready.", req.ContentType.Label()),
		}
	} else {
		note = Notification{
			Level:   NotificationError,
			Title:   "Generation failed",
			Message: FailurePlaceholder,
		}
	}

	if !s.finish(seq, outcome, note) {
		log.DebugContext(ctx, "discarding superseded generation", "sequence", seq)
		outcome.Superseded = true
		return outcome, nil
	}

	s.notifier.Notify(ctx, s.id.String(), note)
	return outcome, nil
}

func (s *Session) begin(req domain.GenerationRequest) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !CanTransition(s.state, StateGenerating) {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state, StateGenerating)
	}

	s.seq++
	s.state = StateGenerating
	s.request = &req
	s.images = nil
	s.updatedAt = s.now()
	return s.seq, nil
}

// finish writes the terminal state for run seq. It reports false when a
// newer run has started since.
func (s *Session) finish(seq uint64, outcome *Outcome, note Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.state = StateFailed
	if outcome.Success {
		s.state = StateSuccess
	}
	s.outcome = outcome
	s.notification = &note
	s.updatedAt = s.now()
	return true
}

// GenerateImages produces carousel images from the last successful carousel
// outcome. On failure no images are recorded and the error is returned.
func (s *Session) GenerateImages(ctx context.Context) (*domain.ImageSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	seq := s.seq
	req := s.request
	outcome := s.outcome
	ready := s.state == StateSuccess && req != nil && outcome != nil &&
		outcome.Content != nil && outcome.Content.ContentType.IsCarousel()
	s.mu.Unlock()

	if !ready {
		return nil, ErrNoCarouselContent
	}

	set, err := s.studio.GenerateCarouselImages(ctx, outcome.Content, req.Prompt, req.SlideCount)
	if err != nil {
		log.WarnContext(ctx, "carousel image generation failed", "error", err)
		note := Notification{
			Level:   NotificationError,
			Title:   "Image generation failed",
			Message: "Could not generate images for the carousel. Please try again.",
		}
		if s.record(seq, nil, note) {
			s.notifier.Notify(ctx, s.id.String(), note)
		}
		return nil, err
	}

	note := Notification{
		Level:   NotificationSuccess,
		Title:   "Images generated",
		Message: fmt.Sprintf("%d slide images are ready.", len(set.Images)),
	}
	if s.record(seq, set, note) {
		s.notifier.Notify(ctx, s.id.String(), note)
	}
	return set, nil
}

// record stores images derived from run seq if that run is still current.
func (s *Session) record(seq uint64, set *domain.ImageSet, note Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	if set != nil {
		s.images = set
	}
	s.notification = &note
	s.updatedAt = s.now()
	return true
}

func failureContent(req domain.GenerationRequest) *domain.GeneratedContent {
	return &domain.GeneratedContent{
		Content:        FailurePlaceholder,
		Hashtags:       []string{},
		CharacterCount: utf8.RuneCountInString(FailurePlaceholder),
		Platform:       req.Platform,
		ContentType:    req.ContentType,
	}
}
