package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	infra "cartengine/internal/infra/repository"
	repo "cartengine/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data    map[string]string
	lastTTL time.Duration
	err     error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	f.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestBlobRedisRepository_GetPut(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{data: map[string]string{}}
	s := infra.NewBlobRedisRepository(client, "shop:", time.Hour)

	_, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, s.Put(ctx, "cart", "[]"))
	assert.Equal(t, "[]", client.data["shop:cart"])
	assert.Equal(t, time.Hour, client.lastTTL)

	v, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestBlobRedisRepository_Errors(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{data: map[string]string{}, err: errors.New("dial tcp: refused")}
	s := infra.NewBlobRedisRepository(client, "", 0)

	_, err := s.Get(ctx, "cart")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)

	assert.Error(t, s.Put(ctx, "cart", "[]"))

	// 読めなくてもカートは空で続く
	r := infra.NewCartBlobRepository(s, "cart", nil)
	assert.Empty(t, r.Load(ctx))
}
