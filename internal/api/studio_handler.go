package api

import (
	"net/http"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api/shared"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/logger"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
)

// StudioHandler serves content generation, one-shot and through sessions.
type StudioHandler struct {
	studio   service.ContentStudio
	sessions *service.SessionManager
}

// NewStudioHandler creates a new StudioHandler
func NewStudioHandler(studio service.ContentStudio, sessions *service.SessionManager) *StudioHandler {
	return &StudioHandler{
		studio:   studio,
		sessions: sessions,
	}
}

// Generate handles POST /api/generate. Failures are reported as HTTP errors;
// use a session for placeholder outcomes and notifications.
func (h *StudioHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	content, err := h.studio.Generate(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{GeneratedContent: content})
}

// CreateSession handles POST /api/sessions
func (h *StudioHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Create()

	logger.FromContext(r.Context()).Debug("session created",
		"session_id", session.ID())

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateSessionResponse{
		ID:    session.ID().String(),
		State: session.State(),
	})
}

// GetSession handles GET /api/sessions/{id}
func (h *StudioHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session.Snapshot())
}

// GenerateInSession handles POST /api/sessions/{id}/generate. Generation
// failures are not HTTP errors here: the outcome carries the placeholder
// content and Success=false.
func (h *StudioHandler) GenerateInSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req domain.GenerationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	outcome, err := session.Generate(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, outcome)
}

// GenerateSessionImages handles POST /api/sessions/{id}/images
func (h *StudioHandler) GenerateSessionImages(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	set, err := session.GenerateImages(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImagesResponse{Images: set.Images})
}

func (h *StudioHandler) session(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	session, err := h.sessions.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return session, true
}
