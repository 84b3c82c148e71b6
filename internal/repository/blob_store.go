package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 文字列キーで文字列を保存するだけの約束
// 無いキーは ErrNotFound を返す。
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
}
