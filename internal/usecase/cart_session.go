package usecase

import (
	"context"
	"errors"
	"fmt"

	"cartengine/internal/domain/model"
	repo "cartengine/internal/repository"
	"cartengine/internal/view"

	"go.uber.org/zap"
)

// 画面を描く側の約束（DOM/端末/HTTPレスポンスなど）
type Renderer interface {
	RenderCounter(vm view.CounterViewModel)
	RenderCartPage(vm view.CartPageViewModel)
}

// 追加時の一時通知
type Notifier interface {
	NotifyAdded(title string, imageRef string)
}

// 1ページ分のカート。読み込み時に1回だけ復元し、以後はこれが正。
// 変更のたびに 保存 → 描画 の順で反映する。
type CartSession struct {
	repo       repo.CartRepository
	renderer   Renderer
	notifier   Notifier
	logger     *zap.Logger
	cart       model.Cart
	pageActive bool
}

// 保存済みのカートを読み込んでセッションを作る
func NewCartSession(ctx context.Context, r repo.CartRepository, renderer Renderer, notifier Notifier, logger *zap.Logger) *CartSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CartSession{
		repo:     r,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		cart:     model.NewCart(r.Load(ctx)),
	}
	return s
}

// カートの複製（外から書き換えても影響しない）
func (s *CartSession) Cart() model.Cart {
	return s.cart.Clone()
}

func (s *CartSession) Counter() view.CounterViewModel {
	return view.Counter(s.cart)
}

func (s *CartSession) CartPage() view.CartPageViewModel {
	return view.CartPage(s.cart)
}

// カートページを開いた。以後の変更でページも描き直す。
func (s *CartSession) AttachCartPage() {
	s.pageActive = true
	s.render()
}

// バッジだけ描く
func (s *CartSession) RenderCounter() {
	if s.renderer != nil {
		s.renderer.RenderCounter(view.Counter(s.cart))
	}
}

// 同一商品は数量+1。価格が0以下なら何も起きない。
func (s *CartSession) AddToCart(ctx context.Context, candidate model.ProductCandidate) (model.LineItem, error) {
	item, err := s.cart.Add(candidate)
	if err != nil {
		s.logger.Warn("add to cart refused",
			zap.String("title", candidate.Title),
			zap.Any("price", candidate.Price),
			zap.Error(err),
		)
		return model.LineItem{}, err
	}

	saveErr := s.commit(ctx)
	if s.notifier != nil {
		s.notifier.NotifyAdded(item.Title, item.ImageRef)
	}
	return item, saveErr
}

func (s *CartSession) Increment(ctx context.Context, index int) error {
	return s.mutate(ctx, "increment", zap.Int("index", index), func(c *model.Cart) error {
		return c.Increment(index)
	})
}

func (s *CartSession) Decrement(ctx context.Context, index int) error {
	return s.mutate(ctx, "decrement", zap.Int("index", index), func(c *model.Cart) error {
		return c.Decrement(index)
	})
}

func (s *CartSession) Remove(ctx context.Context, index int) error {
	return s.mutate(ctx, "remove", zap.Int("index", index), func(c *model.Cart) error {
		return c.Remove(index)
	})
}

func (s *CartSession) IncrementByIdentity(ctx context.Context, id model.Identity) error {
	return s.mutate(ctx, "increment", zap.Stringer("identity", id), func(c *model.Cart) error {
		return c.IncrementByIdentity(id)
	})
}

func (s *CartSession) DecrementByIdentity(ctx context.Context, id model.Identity) error {
	return s.mutate(ctx, "decrement", zap.Stringer("identity", id), func(c *model.Cart) error {
		return c.DecrementByIdentity(id)
	})
}

func (s *CartSession) RemoveByIdentity(ctx context.Context, id model.Identity) error {
	return s.mutate(ctx, "remove", zap.Stringer("identity", id), func(c *model.Cart) error {
		return c.RemoveByIdentity(id)
	})
}

func (s *CartSession) mutate(ctx context.Context, op string, target zap.Field, fn func(c *model.Cart) error) error {
	if err := fn(&s.cart); err != nil {
		//古い行番号などは何もしないで終わる
		s.logger.Info("cart action ignored", zap.String("op", op), target, zap.Error(err))
		return err
	}
	return s.commit(ctx)
}

// 保存 → 描画
func (s *CartSession) commit(ctx context.Context) error {
	var saveErr error
	if err := s.repo.Save(ctx, s.cart.Items()); err != nil {
		s.logger.Error("cart save failed", zap.Error(err))
		saveErr = errors.Join(ErrSaveFailed, fmt.Errorf("save: %w", err))
	}
	s.render()
	return saveErr
}

func (s *CartSession) render() {
	if s.renderer == nil {
		return
	}
	if s.pageActive {
		s.renderer.RenderCartPage(view.CartPage(s.cart))
	}
	s.renderer.RenderCounter(view.Counter(s.cart))
}
