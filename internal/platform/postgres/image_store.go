package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/logger"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
	"github.com/google/uuid"
)

// PostgresImageStore implements the store.ImageStore interface
// using a PostgreSQL database as the storage backend.
type PostgresImageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresImageStore creates a new PostgreSQL implementation of the ImageStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresImageStore(db store.DBTX, logger *slog.Logger) *PostgresImageStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresImageStore{
		db:     db,
		logger: logger.With(slog.String("component", "image_store")),
	}
}

// Ensure PostgresImageStore implements store.ImageStore interface
var _ store.ImageStore = (*PostgresImageStore)(nil)

// Save implements store.ImageStore.Save
func (s *PostgresImageStore) Save(ctx context.Context, img *domain.Image) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if img == nil {
		return fmt.Errorf("%w: image is nil", store.ErrInvalidEntity)
	}
	if err := img.Validate(); err != nil {
		log.Warn("image validation failed during save",
			slog.String("error", err.Error()),
			slog.String("image_id", img.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO images (id, content_type, data, created_at) VALUES ($1, $2, $3, $4)`,
		img.ID, img.ContentType, img.Data, img.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert image",
			slog.String("error", err.Error()),
			slog.String("image_id", img.ID.String()))
		return store.NewStoreError("image", "save", "insert failed", MapError(err))
	}

	log.Debug("image saved",
		slog.String("image_id", img.ID.String()),
		slog.Int("bytes", len(img.Data)))
	return nil
}

// Get implements store.ImageStore.Get
func (s *PostgresImageStore) Get(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	var img domain.Image
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content_type, data, created_at FROM images WHERE id = $1`, id,
	).Scan(&img.ID, &img.ContentType, &img.Data, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrImageNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to fetch image",
			slog.String("error", err.Error()),
			slog.String("image_id", id.String()))
		return nil, store.NewStoreError("image", "get", "query failed", MapError(err))
	}
	return &img, nil
}

// Delete implements store.ImageStore.Delete
func (s *PostgresImageStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("image", "delete", "delete failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("image", "delete", "rows affected unavailable", err)
	}
	if rows == 0 {
		return store.ErrImageNotFound
	}
	return nil
}

// DeleteOlderThan implements store.ImageStore.DeleteOlderThan
func (s *PostgresImageStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, store.NewStoreError("image", "delete_expired", "delete failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("image", "delete_expired", "rows affected unavailable", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("expired images deleted",
		slog.Int64("count", rows),
		slog.Time("cutoff", cutoff))
	return int(rows), nil
}
