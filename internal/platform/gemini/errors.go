package gemini

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/redact"
	"google.golang.org/genai"
)

// DefaultBaseURL is the public Gemini API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

func validateConfig(logger *slog.Logger, apiKey, model string) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrConfiguration)
	}
	if model == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrConfiguration)
	}
	return nil
}

func statusError(code int) *generation.GenerationError {
	return &generation.GenerationError{StatusCode: code, StatusText: http.StatusText(code)}
}

// transportError wraps err with the API key scrubbed from its message, since
// URL errors echo the full request URL.
func transportError(err error, apiKey string) *generation.GenerationError {
	return &generation.GenerationError{Err: errors.New(redact.Values(err.Error(), apiKey))}
}

// mapSDKError converts errors returned by the genai client into the shared
// GenerationError type.
func mapSDKError(err error, apiKey string) *generation.GenerationError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiStatusError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiStatusError(*apiErrPtr)
	}
	return transportError(err, apiKey)
}

func apiStatusError(apiErr genai.APIError) *generation.GenerationError {
	ge := statusError(apiErr.Code)
	if apiErr.Status != "" {
		ge.StatusText = apiErr.Status
	}
	return ge
}
