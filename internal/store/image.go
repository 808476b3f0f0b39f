package store

import (
	"context"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/google/uuid"
)

// ImageStore holds generated images until they are served or expire.
type ImageStore interface {
	// Save stores img. img must pass domain validation; otherwise an error
	// wrapping ErrInvalidEntity is returned.
	Save(ctx context.Context, img *domain.Image) error

	// Get returns the image with id, or ErrImageNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Image, error)

	// Delete removes the image with id. Deleting a missing image returns
	// ErrImageNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteOlderThan removes every image created before cutoff and returns
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
