package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/postgres"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(tx *sql.Tx) *postgres.PostgresImageStore {
	return postgres.NewPostgresImageStore(tx, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostgresImageStore_RoundTrip(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newStore(tx)
		ctx := context.Background()

		img, err := domain.NewImage([]byte("png-bytes"), "image/png")
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, img))

		got, err := s.Get(ctx, img.ID)
		require.NoError(t, err)
		assert.Equal(t, img.Data, got.Data)
		assert.Equal(t, img.ContentType, got.ContentType)
		assert.WithinDuration(t, img.CreatedAt, got.CreatedAt, time.Millisecond)

		require.NoError(t, s.Delete(ctx, img.ID))
		_, err = s.Get(ctx, img.ID)
		assert.ErrorIs(t, err, store.ErrImageNotFound)
		assert.ErrorIs(t, s.Delete(ctx, uuid.New()), store.ErrImageNotFound)
	})
}

func TestPostgresImageStore_Duplicate(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newStore(tx)
		ctx := context.Background()

		img, err := domain.NewImage([]byte("png-bytes"), "image/png")
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, img))

		// The failed insert aborts the transaction, so this must be the
		// last statement in it.
		assert.ErrorIs(t, s.Save(ctx, img), store.ErrDuplicate)
	})
}

func TestPostgresImageStore_DeleteOlderThan(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newStore(tx)
		ctx := context.Background()
		now := time.Now().UTC()

		old, err := domain.NewImage([]byte("old"), "image/png")
		require.NoError(t, err)
		old.CreatedAt = now.Add(-48 * time.Hour)

		fresh, err := domain.NewImage([]byte("fresh"), "image/png")
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, old))
		require.NoError(t, s.Save(ctx, fresh))

		removed, err := s.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, removed, 1)

		_, err = s.Get(ctx, old.ID)
		assert.ErrorIs(t, err, store.ErrImageNotFound)
		_, err = s.Get(ctx, fresh.ID)
		assert.NoError(t, err)
	})
}

func TestPostgresImageStore_SaveInvalid(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		err := newStore(tx).Save(context.Background(), &domain.Image{ID: uuid.New(), ContentType: "image/png"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
