package repository

import (
	"context"

	"cartengine/internal/domain/model"
)

// カートの読み書き
// Loadは失敗しない（無い/壊れている場合は空）。
type CartRepository interface {
	Load(ctx context.Context) []model.LineItem
	Save(ctx context.Context, items []model.LineItem) error
}
