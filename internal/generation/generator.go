package generation

import "context"

// TextGenerator sends a single prompt to a remote language model.
// This interface serves as a boundary between the studio pipeline and the
// model provider, so the provider can be swapped without touching parsing.
type TextGenerator interface {
	// Generate returns the raw text produced for prompt.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The complete instruction text, sent as one blob
	//   - creativity: Sampling temperature in [0,1]
	//   - tokenBudget: Maximum number of output tokens to request
	//
	// Returns:
	//   - The generated text, or "" when the response carried none
	//   - An error matching ErrGenerationFailed on non-success or transport failure
	Generate(ctx context.Context, prompt string, creativity float64, tokenBudget int) (string, error)
}

// ImageGenerator turns one slide prompt into an encoded image.
type ImageGenerator interface {
	// GenerateImage returns the image bytes and their MIME type. The
	// credential is checked on every call; a missing one yields
	// ErrConfiguration before any network attempt.
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}
