package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package and its clients
var (
	// ErrConfiguration is returned when a required credential or setting is
	// missing. It is never retried.
	ErrConfiguration = errors.New("generator configuration invalid")

	// ErrGenerationFailed is returned when the text model call fails, either
	// with a non-success status or at the transport level.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrImageGenerationFailed is returned when an image service call fails.
	ErrImageGenerationFailed = errors.New("image generation failed")
)

// GenerationError describes a failed text model call. StatusCode is zero for
// transport failures, in which case Err holds the cause.
type GenerationError struct {
	StatusCode int
	StatusText string
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d %s", ErrGenerationFailed, e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("%s: %v", ErrGenerationFailed, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is makes every GenerationError match ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// ImageGenerationError describes a failed image service call.
type ImageGenerationError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ImageGenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code: %d, body: %s", ErrImageGenerationFailed, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", ErrImageGenerationFailed, e.Err)
}

func (e *ImageGenerationError) Unwrap() error { return e.Err }

// Is makes every ImageGenerationError match ErrImageGenerationFailed.
func (e *ImageGenerationError) Is(target error) bool {
	return target == ErrImageGenerationFailed
}
