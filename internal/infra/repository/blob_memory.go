package repository

import (
	"context"
	"sync"

	repo "cartengine/internal/repository"
)

// プロセス内だけのKV（開発・テスト用）
type BlobMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewBlobMemoryRepository() *BlobMemoryRepository {
	return &BlobMemoryRepository{data: map[string]string{}}
}

func (r *BlobMemoryRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (r *BlobMemoryRepository) Put(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = value
	return nil
}
