package repository

import (
	"context"
	"encoding/json"
	"errors"

	"cartengine/internal/domain/model"
	repo "cartengine/internal/repository"

	"go.uber.org/zap"
)

const DefaultCartKey = "cart"

// 保存形式の1レコード
type lineItemRecord struct {
	Identity  string  `json:"identity"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef"`
	Quantity  int     `json:"quantity"`
}

// カートをJSONにして固定キーでBlobStoreへ保存する。
type CartBlobRepository struct {
	store  repo.BlobStore
	key    string
	logger *zap.Logger
}

// DI
func NewCartBlobRepository(store repo.BlobStore, key string, logger *zap.Logger) *CartBlobRepository {
	if key == "" {
		key = DefaultCartKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartBlobRepository{store: store, key: key, logger: logger}
}

func (r *CartBlobRepository) Key() string {
	return r.key
}

// 無い・壊れている場合は空を返す
func (r *CartBlobRepository) Load(ctx context.Context) []model.LineItem {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.LineItem{}
	}
	if err != nil {
		r.logger.Warn("cart load failed", zap.String("key", r.key), zap.Error(err))
		return []model.LineItem{}
	}

	items, err := DecodeCart([]byte(raw))
	if err != nil {
		r.logger.Warn("cart state discarded", zap.String("key", r.key), zap.Error(err))
		return []model.LineItem{}
	}
	return items
}

func (r *CartBlobRepository) Save(ctx context.Context, items []model.LineItem) error {
	b, err := EncodeCart(items)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, string(b))
}

func EncodeCart(items []model.LineItem) ([]byte, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, it := range items {
		records = append(records, lineItemRecord{
			Identity:  it.Identity().String(),
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			ImageRef:  it.ImageRef,
			Quantity:  it.Quantity,
		})
	}
	return json.Marshal(records)
}

// JSONとして読めないときは ErrCorruptPersistedState
// identityは title/unitPrice から作り直す。
func DecodeCart(b []byte) ([]model.LineItem, error) {
	var records []lineItemRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Join(model.ErrCorruptPersistedState, err)
	}

	items := make([]model.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, model.LineItem{
			Title:     rec.Title,
			UnitPrice: rec.UnitPrice,
			ImageRef:  rec.ImageRef,
			Quantity:  rec.Quantity,
		})
	}
	return model.NewCart(items).Items(), nil
}
