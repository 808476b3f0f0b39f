package gemini

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"google.golang.org/genai"
)

// SDKGenerator implements generation.TextGenerator with the genai client.
type SDKGenerator struct {
	logger *slog.Logger
	client *genai.Client
	apiKey string
	model  string
}

var _ generation.TextGenerator = (*SDKGenerator)(nil)

// NewSDKGenerator creates an SDKGenerator. A non-empty cfg.BaseURL overrides
// the genai default host.
func NewSDKGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*SDKGenerator, error) {
	if err := validateConfig(logger, cfg.GeminiAPIKey, cfg.ModelName); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(cfg.BaseURL, "/") + "/"}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, &generation.GenerationError{Err: err}
	}

	return &SDKGenerator{
		logger: logger.With("component", "gemini_sdk"),
		client: client,
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.ModelName,
	}, nil
}

// Generate calls Models.GenerateContent and returns the text of the first
// candidate.
func (g *SDKGenerator) Generate(
	ctx context.Context,
	prompt string,
	creativity float64,
	tokenBudget int,
) (string, error) {
	g.logger.DebugContext(ctx, "Calling Gemini through genai",
		"model", g.model,
		"prompt_length", len(prompt),
		"max_output_tokens", tokenBudget)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(creativity)),
		MaxOutputTokens: int32(tokenBudget),
	})
	if err != nil {
		genErr := mapSDKError(err, g.apiKey)
		g.logger.ErrorContext(ctx, "Gemini SDK call failed", "error", genErr)
		return "", genErr
	}

	return sdkResponseText(resp), nil
}

func sdkResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
