package repository_test

import (
	"context"
	"errors"
	"testing"

	"cartengine/internal/domain/model"
	infra "cartengine/internal/infra/repository"
	repo "cartengine/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBlobStore struct{}

func (failingBlobStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (failingBlobStore) Put(ctx context.Context, key string, value string) error {
	return errors.New("connection refused")
}

func TestCartBlobRepository_LoadAbsentKey(t *testing.T) {
	r := infra.NewCartBlobRepository(infra.NewBlobMemoryRepository(), "", nil)

	assert.Equal(t, infra.DefaultCartKey, r.Key())
	assert.Empty(t, r.Load(context.Background()))
}

func TestCartBlobRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := infra.NewCartBlobRepository(infra.NewBlobMemoryRepository(), "cart", nil)

	items := []model.LineItem{
		{Title: "Tea", UnitPrice: 4.5, ImageRef: "tea.png", Quantity: 3},
		{Title: "Mug", UnitPrice: 9.99, ImageRef: "mug.png", Quantity: 1},
		{Title: "Mug", UnitPrice: 10, ImageRef: "mug.png", Quantity: 2},
	}
	require.NoError(t, r.Save(ctx, items))

	assert.Equal(t, items, r.Load(ctx))
}

func TestCartBlobRepository_WireFormat(t *testing.T) {
	ctx := context.Background()
	store := infra.NewBlobMemoryRepository()
	r := infra.NewCartBlobRepository(store, "cart", nil)

	require.NoError(t, r.Save(ctx, []model.LineItem{{Title: "Mug", UnitPrice: 9.99, ImageRef: "mug.png", Quantity: 2}}))

	raw, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"identity":"Mug_9.99","title":"Mug","unitPrice":9.99,"imageRef":"mug.png","quantity":2}]`, raw)
}

func TestCartBlobRepository_CorruptContent(t *testing.T) {
	cases := map[string]string{
		"not json":       "{{{",
		"object":         `{"title":"Mug"}`,
		"string":         `"cart"`,
		"float quantity": `[{"title":"Mug","unitPrice":1,"quantity":1.5}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := infra.NewBlobMemoryRepository()
			require.NoError(t, store.Put(ctx, "cart", raw))

			r := infra.NewCartBlobRepository(store, "cart", nil)
			assert.Empty(t, r.Load(ctx))
		})
	}
}

func TestCartBlobRepository_StoreFailure(t *testing.T) {
	r := infra.NewCartBlobRepository(failingBlobStore{}, "cart", nil)

	assert.Empty(t, r.Load(context.Background()))
	assert.Error(t, r.Save(context.Background(), nil))
}

func TestDecodeCart(t *testing.T) {
	items, err := infra.DecodeCart([]byte(`[
		{"identity":"stale","title":"Mug","unitPrice":9.99,"imageRef":"a","quantity":2},
		{"title":"Tea","unitPrice":4},
		{"title":"Mug","unitPrice":9.99,"imageRef":"b","quantity":1},
		{"title":"Bad","unitPrice":-1,"quantity":1}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []model.LineItem{
		{Title: "Mug", UnitPrice: 9.99, ImageRef: "a", Quantity: 3},
		{Title: "Tea", UnitPrice: 4, Quantity: 1},
	}, items)

	_, err = infra.DecodeCart([]byte("nope"))
	assert.ErrorIs(t, err, model.ErrCorruptPersistedState)

	items, err = infra.DecodeCart([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBlobMemoryRepository(t *testing.T) {
	ctx := context.Background()
	s := infra.NewBlobMemoryRepository()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, s.Put(ctx, "k", "v1"))
	require.NoError(t, s.Put(ctx, "k", "v2"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}
