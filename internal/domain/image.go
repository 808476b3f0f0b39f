package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Image validation errors
var (
	ErrImageIDEmpty   = errors.New("image ID cannot be empty")
	ErrImageDataEmpty = errors.New("image data cannot be empty")
)

// Image is a generated image blob held until it expires.
type Image struct {
	ID          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewImage creates an Image with a fresh ID. An empty content type defaults
// to image/png.
func NewImage(data []byte, contentType string) (*Image, error) {
	if contentType == "" {
		contentType = "image/png"
	}

	img := &Image{
		ID:          uuid.New(),
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}

	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks that the image has an ID and data.
func (i *Image) Validate() error {
	if i.ID == uuid.Nil {
		return ErrImageIDEmpty
	}
	if len(i.Data) == 0 {
		return ErrImageDataEmpty
	}
	return nil
}

// SlideImage is the image reference for one carousel slide. Placeholder is
// set when the slide prompt was too short to send to the image service.
type SlideImage struct {
	Index       int    `json:"index"`
	Prompt      string `json:"prompt"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
}

// ImageSet holds one SlideImage per slide, index-aligned with the slide
// prompts it was generated from.
type ImageSet struct {
	Images []SlideImage `json:"images"`
}
