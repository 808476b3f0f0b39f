package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/api/shared"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service/auth"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, shared.ErrInvalidJSON):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrNoCarouselContent),
		errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, generation.ErrConfiguration):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrImageGenerationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return SanitizeValidationError(validationErr)
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"
	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, store.ErrImageNotFound):
		return "Image not found"
	case errors.Is(err, service.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, service.ErrNoCarouselContent):
		return "No carousel content to generate images from"
	case errors.Is(err, generation.ErrConfiguration):
		return "Generation service is not configured"
	case errors.Is(err, generation.ErrImageGenerationFailed):
		return "Image generation failed"
	case errors.Is(err, generation.ErrGenerationFailed):
		return "Content generation failed"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError returns a user-facing message naming the field
// and the rule it broke.
func SanitizeValidationError(err *domain.ValidationError) string {
	if err.Field == "" {
		return "Validation error"
	}
	return fmt.Sprintf("Invalid %s: %s", err.Field, err.Message)
}

// HandleAPIError maps err to a status code and writes a sanitized JSON error
// response, logging the redacted detail. A non-empty message overrides the
// default safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
