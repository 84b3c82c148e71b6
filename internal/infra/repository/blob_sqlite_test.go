package repository_test

import (
	"context"
	"testing"

	"cartengine/internal/domain/model"
	"cartengine/internal/infra/db"
	infra "cartengine/internal/infra/repository"
	repo "cartengine/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *infra.BlobSQLiteRepository {
	t.Helper()

	sqlDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := infra.NewBlobSQLiteRepository(sqlDB)
	require.NoError(t, s.EnsureTable(context.Background()))
	return s
}

func TestBlobSQLiteRepository_GetPut(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	_, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, s.Put(ctx, "cart", "[]"))
	require.NoError(t, s.Put(ctx, "cart", `[{"title":"Mug"}]`))

	v, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Mug"}]`, v)
}

func TestBlobSQLiteRepository_EnsureTableIsIdempotent(t *testing.T) {
	s := newSQLiteStore(t)
	assert.NoError(t, s.EnsureTable(context.Background()))
}

func TestBlobSQLiteRepository_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := infra.NewCartBlobRepository(newSQLiteStore(t), "cart:visitor-1", nil)

	items := []model.LineItem{
		{Title: "Mug", UnitPrice: 9.99, ImageRef: "mug.png", Quantity: 2},
		{Title: "Tea", UnitPrice: 4.5, ImageRef: "tea.png", Quantity: 1},
	}
	require.NoError(t, r.Save(ctx, items))
	assert.Equal(t, items, r.Load(ctx))
}
