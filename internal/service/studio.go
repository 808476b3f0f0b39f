package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/metrics"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/logger"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
	"github.com/google/uuid"
)

// URLs under which images are served.
const (
	ImageURLPrefix      = "/api/images/"
	PlaceholderImageURL = ImageURLPrefix + "placeholder"
)

// ImageURL returns the locally addressable URL of a stored image.
func ImageURL(id uuid.UUID) string {
	return ImageURLPrefix + id.String()
}

// ContentStudio is the stateless generation pipeline used by sessions and
// the one-shot API.
type ContentStudio interface {
	// Generate validates req and returns parsed content for it.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedContent, error)

	// GenerateCarouselImages produces one image reference per slide of
	// content. The set is returned whole or not at all.
	GenerateCarouselImages(
		ctx context.Context,
		content *domain.GeneratedContent,
		originalPrompt string,
		slideCount int,
	) (*domain.ImageSet, error)
}

// Studio sequences topic extraction, prompt building, the text model call
// and parsing. Image generation runs only when explicitly requested.
type Studio struct {
	text   generation.TextGenerator
	images generation.ImageGenerator
	store  store.ImageStore
	logger *slog.Logger
}

var _ ContentStudio = (*Studio)(nil)

// NewStudio creates a Studio.
//
// Parameters:
//   - text: The text model client
//   - images: The image service client
//   - imageStore: Where generated images are kept until served
//   - logger: Logger for the studio; nil uses the default logger
//
// Returns:
//   - A ready Studio, or an error if a required dependency is nil
func NewStudio(
	text generation.TextGenerator,
	images generation.ImageGenerator,
	imageStore store.ImageStore,
	logger *slog.Logger,
) (*Studio, error) {
	if text == nil {
		return nil, errors.New("text generator cannot be nil")
	}
	if images == nil {
		return nil, errors.New("image generator cannot be nil")
	}
	if imageStore == nil {
		return nil, errors.New("image store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Studio{
		text:   text,
		images: images,
		store:  imageStore,
		logger: logger.With("component", "studio"),
	}, nil
}

// Generate implements ContentStudio.
func (s *Studio) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedContent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	topic := generation.ExtractTopic(req.Prompt)
	prompt := generation.BuildPrompt(topic, req)
	budget := generation.TokenBudget(req)
	contentType := string(req.ContentType)

	log.DebugContext(ctx, "generating content",
		"content_type", contentType,
		"platform", req.Platform,
		"topic", topic,
		"token_budget", budget)

	start := time.Now()
	raw, err := s.text.Generate(ctx, prompt, req.Creativity, budget)
	metrics.ObserveTextGenerationDuration(contentType, time.Since(start))
	if err != nil {
		metrics.IncTextGeneration(contentType, "failure")
		metrics.IncError("studio", "text_generation")
		log.ErrorContext(ctx, "text generation failed",
			"content_type", contentType,
			"error", err)
		return nil, NewStudioError("generate_content", "text model call failed", err)
	}

	content := generation.Parse(raw, req)
	metrics.IncTextGeneration(contentType, "success")

	log.InfoContext(ctx, "content generated",
		"content_type", contentType,
		"characters", content.CharacterCount,
		"hashtags", len(content.Hashtags))

	return content, nil
}

// GenerateCarouselImages implements ContentStudio. Slides are processed one
// at a time in order. Prompts that are degenerate after cleaning get the
// placeholder URL without a remote call. If any slide fails, the images
// already stored for this batch are deleted and no set is returned.
func (s *Studio) GenerateCarouselImages(
	ctx context.Context,
	content *domain.GeneratedContent,
	originalPrompt string,
	slideCount int,
) (*domain.ImageSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if content == nil || !content.ContentType.IsCarousel() || strings.TrimSpace(content.Content) == "" {
		return nil, ErrNoCarouselContent
	}
	if slideCount < 1 {
		return nil, domain.NewValidationError("SlideCount", "must be at least 1", nil)
	}

	prompts := generation.SlidePrompts(content.Content, originalPrompt, slideCount)
	set := &domain.ImageSet{Images: make([]domain.SlideImage, 0, len(prompts))}
	stored := make([]uuid.UUID, 0, len(prompts))

	for i, raw := range prompts {
		prompt := generation.CleanSlidePrompt(raw)

		if generation.IsDegenerateSlidePrompt(prompt) {
			metrics.IncImagePlaceholder()
			log.DebugContext(ctx, "slide prompt too short, using placeholder", "slide", i+1)
			set.Images = append(set.Images, domain.SlideImage{
				Index:       i,
				Prompt:      prompt,
				URL:         PlaceholderImageURL,
				Placeholder: true,
			})
			continue
		}

		id, err := s.generateSlideImage(ctx, prompt)
		if err != nil {
			metrics.IncError("studio", "image_generation")
			log.ErrorContext(ctx, "slide image generation failed, discarding batch",
				"slide", i+1,
				"discarded", len(stored),
				"error", err)
			s.discard(ctx, stored)
			return nil, NewStudioError("generate_images", fmt.Sprintf("slide %d", i+1), err)
		}

		stored = append(stored, id)
		set.Images = append(set.Images, domain.SlideImage{
			Index:  i,
			Prompt: prompt,
			URL:    ImageURL(id),
		})
	}

	log.InfoContext(ctx, "carousel images generated",
		"slides", len(set.Images),
		"generated", len(stored))

	return set, nil
}

func (s *Studio) generateSlideImage(ctx context.Context, prompt string) (uuid.UUID, error) {
	data, contentType, err := s.images.GenerateImage(ctx, prompt)
	if err != nil {
		metrics.IncImageGeneration("failure")
		return uuid.Nil, err
	}
	metrics.IncImageGeneration("success")

	img, err := domain.NewImage(data, contentType)
	if err != nil {
		return uuid.Nil, &generation.ImageGenerationError{Err: err}
	}
	if err := s.store.Save(ctx, img); err != nil {
		return uuid.Nil, fmt.Errorf("failed to store image: %w", err)
	}
	return img.ID, nil
}

// discard deletes images stored earlier in a failed batch. It uses a context
// detached from cancellation so a cancelled request still cleans up.
func (s *Studio) discard(ctx context.Context, ids []uuid.UUID) {
	cleanupCtx := context.WithoutCancel(ctx)
	for _, id := range ids {
		if err := s.store.Delete(cleanupCtx, id); err != nil && !errors.Is(err, store.ErrImageNotFound) {
			s.logger.WarnContext(ctx, "failed to discard image from aborted batch",
				"image_id", id,
				"error", err)
		}
	}
}
