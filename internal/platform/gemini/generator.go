package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
)

// Backend names accepted in config.LLMConfig.Backend.
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

// NewGenerator returns the text generator selected by cfg.Backend.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.TextGenerator, error) {
	switch cfg.Backend {
	case BackendREST, "":
		gen, err := NewRESTGenerator(logger, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case BackendSDK:
		gen, err := NewSDKGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("%w: unknown llm backend %q", generation.ErrConfiguration, cfg.Backend)
	}
}
