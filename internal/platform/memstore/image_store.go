// Package memstore provides in-memory implementations of the store
// interfaces. It is the default when no database URL is configured.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
	"github.com/google/uuid"
)

// ImageStore is a mutex-guarded map of images.
type ImageStore struct {
	mu     sync.RWMutex
	images map[uuid.UUID]*domain.Image
}

var _ store.ImageStore = (*ImageStore)(nil)

// NewImageStore returns an empty ImageStore.
func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[uuid.UUID]*domain.Image)}
}

// Save implements store.ImageStore. The image data is copied.
func (s *ImageStore) Save(_ context.Context, img *domain.Image) error {
	if img == nil {
		return fmt.Errorf("%w: image is nil", store.ErrInvalidEntity)
	}
	if err := img.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.images[img.ID]; exists {
		return fmt.Errorf("%w: image %s", store.ErrDuplicate, img.ID)
	}
	s.images[img.ID] = cloneImage(img)
	return nil
}

// Get implements store.ImageStore.
func (s *ImageStore) Get(_ context.Context, id uuid.UUID) (*domain.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[id]
	if !ok {
		return nil, store.ErrImageNotFound
	}
	return cloneImage(img), nil
}

// Delete implements store.ImageStore.
func (s *ImageStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[id]; !ok {
		return store.ErrImageNotFound
	}
	delete(s.images, id)
	return nil
}

// DeleteOlderThan implements store.ImageStore.
func (s *ImageStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, img := range s.images {
		if img.CreatedAt.Before(cutoff) {
			delete(s.images, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored images.
func (s *ImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

func cloneImage(img *domain.Image) *domain.Image {
	c := *img
	c.Data = append([]byte(nil), img.Data...)
	return &c
}
