package usecase

import (
	"context"

	repo "cartengine/internal/repository"

	"go.uber.org/zap"
)

// 訪問者ごとのカートを開く。
// 保存先は訪問者ごとに別キーで、同じ訪問者の同時書き込みは後勝ち。
type CartUsecase struct {
	repos     func(visitorID string) repo.CartRepository
	notifiers func(visitorID string) Notifier
	logger    *zap.Logger
}

func NewCartUsecase(
	repos func(visitorID string) repo.CartRepository,
	notifiers func(visitorID string) Notifier,
	logger *zap.Logger,
) *CartUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUsecase{
		repos:     repos,
		notifiers: notifiers,
		logger:    logger,
	}
}

// ページ読み込み1回分のセッション
func (u *CartUsecase) Open(ctx context.Context, visitorID string, renderer Renderer) *CartSession {
	var n Notifier
	if u.notifiers != nil {
		n = u.notifiers(visitorID)
	}
	return NewCartSession(ctx, u.repos(visitorID), renderer, n, u.logger.With(zap.String("visitor_id", visitorID)))
}
