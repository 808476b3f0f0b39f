package domain_test

import (
	"errors"
	"testing"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Prompt:      "tips for morning routines",
		ContentType: domain.ContentTypePost,
		Platform:    domain.PlatformInstagram,
		Tone:        "casual",
		Creativity:  0.7,
		MaxLength:   280,
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *domain.GenerationRequest)
		wantField string
	}{
		{name: "valid post", mutate: func(r *domain.GenerationRequest) {}},
		{name: "valid carousel", mutate: func(r *domain.GenerationRequest) {
			r.ContentType = domain.ContentTypeCarousel
			r.SlideCount = 5
		}},
		{name: "empty prompt", mutate: func(r *domain.GenerationRequest) { r.Prompt = "" }, wantField: "Prompt"},
		{name: "blank prompt", mutate: func(r *domain.GenerationRequest) { r.Prompt = "   " }, wantField: "Prompt"},
		{name: "unknown content type", mutate: func(r *domain.GenerationRequest) { r.ContentType = "essay" }, wantField: "ContentType"},
		{name: "unknown platform", mutate: func(r *domain.GenerationRequest) { r.Platform = "myspace" }, wantField: "Platform"},
		{name: "missing tone", mutate: func(r *domain.GenerationRequest) { r.Tone = "" }, wantField: "Tone"},
		{name: "creativity too high", mutate: func(r *domain.GenerationRequest) { r.Creativity = 1.5 }, wantField: "Creativity"},
		{name: "creativity negative", mutate: func(r *domain.GenerationRequest) { r.Creativity = -0.1 }, wantField: "Creativity"},
		{name: "max length too small", mutate: func(r *domain.GenerationRequest) { r.MaxLength = 49 }, wantField: "MaxLength"},
		{name: "max length too large", mutate: func(r *domain.GenerationRequest) { r.MaxLength = 2001 }, wantField: "MaxLength"},
		{name: "carousel without slides", mutate: func(r *domain.GenerationRequest) {
			r.ContentType = domain.ContentTypeCarousel
		}, wantField: "SlideCount"},
		{name: "carousel with one slide", mutate: func(r *domain.GenerationRequest) {
			r.ContentType = domain.ContentTypeCarousel
			r.SlideCount = 1
		}, wantField: "SlideCount"},
		{name: "carousel with eleven slides", mutate: func(r *domain.GenerationRequest) {
			r.ContentType = domain.ContentTypeCarousel
			r.SlideCount = 11
		}, wantField: "SlideCount"},
		{name: "slides on a post", mutate: func(r *domain.GenerationRequest) { r.SlideCount = 3 }, wantField: "SlideCount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestContentTypeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ad copy", domain.ContentTypeAdCopy.Label())
	assert.Equal(t, "post", domain.ContentTypePost.Label())
	assert.True(t, domain.ContentTypeCarousel.IsCarousel())
	assert.False(t, domain.ContentTypeReel.IsCarousel())
}

func TestNewImage(t *testing.T) {
	t.Parallel()

	img, err := domain.NewImage([]byte{0x89, 'P', 'N', 'G'}, "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.NotEmpty(t, img.ID)
	assert.False(t, img.CreatedAt.IsZero())

	_, err = domain.NewImage(nil, "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrImageDataEmpty)
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("Tone", "is required", nil)

	assert.Equal(t, "validation failed: Tone is required", err.Error())
	assert.ErrorIs(t, err, domain.ErrValidation)
}
