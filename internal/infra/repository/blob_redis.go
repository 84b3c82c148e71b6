package repository

import (
	"context"
	"errors"
	"time"

	repo "cartengine/internal/repository"

	"github.com/redis/go-redis/v9"
)

// BlobRedisRepositoryが使うコマンドだけ
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type BlobRedisRepository struct {
	client redisKV
	prefix string
	ttl    time.Duration
}

// ttl=0 は期限なし
func NewBlobRedisRepository(client redisKV, prefix string, ttl time.Duration) *BlobRedisRepository {
	return &BlobRedisRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *BlobRedisRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *BlobRedisRepository) Put(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}
