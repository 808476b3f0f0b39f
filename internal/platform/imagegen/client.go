// Package imagegen implements generation.ImageGenerator against a
// text-to-image HTTP endpoint that takes a multipart form and answers with
// the encoded image.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/redact"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultModel is sent when the configuration names no model.
	DefaultModel = "stable-diffusion-xl"

	// ImageWidth and ImageHeight are fixed for every slide.
	ImageWidth  = 768
	ImageHeight = 768

	apiKeyHeader       = "x-api-key"
	defaultContentType = "image/png"
	maxErrorBodyLength = 512
)

// Client calls the image service. It is safe for concurrent use, although
// the studio issues requests one slide at a time.
type Client struct {
	logger   *slog.Logger
	http     *resty.Client
	endpoint string
	apiKey   string
	model    string
}

var _ generation.ImageGenerator = (*Client)(nil)

// NewClient creates an image client. A missing API key is not an error here;
// GenerateImage checks it on every call.
func NewClient(logger *slog.Logger, cfg config.ImagesConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: image endpoint cannot be empty", generation.ErrConfiguration)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		logger:   logger.With("component", "imagegen"),
		http:     resty.New(),
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    model,
	}, nil
}

// GenerateImage posts prompt to the image endpoint and returns the image
// bytes with their content type.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	if c.apiKey == "" {
		return nil, "", fmt.Errorf("%w: image API key is not configured", generation.ErrConfiguration)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.apiKey).
		SetMultipartFormData(map[string]string{
			"prompt": prompt,
			"model":  c.model,
			"width":  strconv.Itoa(ImageWidth),
			"height": strconv.Itoa(ImageHeight),
		}).
		Post(c.endpoint)
	if err != nil {
		imgErr := &generation.ImageGenerationError{Err: errors.New(redact.Values(err.Error(), c.apiKey))}
		c.logger.ErrorContext(ctx, "Image request failed", "error", imgErr)
		return nil, "", imgErr
	}

	if !resp.IsSuccess() {
		body := string(resp.Body())
		if len(body) > maxErrorBodyLength {
			body = body[:maxErrorBodyLength]
		}
		imgErr := &generation.ImageGenerationError{StatusCode: resp.StatusCode(), Body: body}
		c.logger.ErrorContext(ctx, "Image service returned non-success status",
			"status", resp.StatusCode())
		return nil, "", imgErr
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, "", &generation.ImageGenerationError{Err: errors.New("empty image body")}
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	c.logger.DebugContext(ctx, "Image generated",
		"bytes", len(data),
		"content_type", contentType)

	return data, contentType, nil
}
