package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/go-resty/resty/v2"
)

const generateContentPath = "/v1beta/models/{model}:generateContent"

// RESTGenerator implements generation.TextGenerator by posting to the Gemini
// REST endpoint.
type RESTGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client carries the base URL and JSON headers
	client *resty.Client

	apiKey string
	model  string
}

var _ generation.TextGenerator = (*RESTGenerator)(nil)

// NewRESTGenerator creates a RESTGenerator from the LLM configuration.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and base URL
//
// Returns:
//   - A ready RESTGenerator, or an error wrapping generation.ErrConfiguration
//     when the API key or model name is missing
func NewRESTGenerator(logger *slog.Logger, cfg config.LLMConfig) (*RESTGenerator, error) {
	if err := validateConfig(logger, cfg.GeminiAPIKey, cfg.ModelName); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RESTGenerator{
		logger: logger.With("component", "gemini_rest"),
		client: client,
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.ModelName,
	}, nil
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate.
func (g *RESTGenerator) Generate(
	ctx context.Context,
	prompt string,
	creativity float64,
	tokenBudget int,
) (string, error) {
	g.logger.DebugContext(ctx, "Calling Gemini generateContent",
		"model", g.model,
		"prompt_length", len(prompt),
		"max_output_tokens", tokenBudget)

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetQueryParam("key", g.apiKey).
		SetBody(newRequest(prompt, creativity, tokenBudget)).
		Post(generateContentPath)
	if err != nil {
		genErr := transportError(err, g.apiKey)
		g.logger.ErrorContext(ctx, "Gemini request failed", "error", genErr)
		return "", genErr
	}

	if !resp.IsSuccess() {
		genErr := statusError(resp.StatusCode())
		g.logger.ErrorContext(ctx, "Gemini returned non-success status",
			"status", resp.StatusCode(),
			"body", string(resp.Body()))
		return "", genErr
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		g.logger.WarnContext(ctx, "Gemini response body was not valid JSON, treating as empty",
			"error", err)
		return "", nil
	}

	return parsed.text(), nil
}
