package api

import (
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
)

// GenerateResponse is the body returned by the one-shot generate endpoint.
type GenerateResponse struct {
	*domain.GeneratedContent
}

// CreateSessionResponse is returned when a session is created.
type CreateSessionResponse struct {
	ID    string        `json:"id"`
	State service.State `json:"state"`
}

// ImagesResponse lists the images generated for a carousel.
type ImagesResponse struct {
	Images []domain.SlideImage `json:"images"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
