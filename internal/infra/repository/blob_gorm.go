package repository

import (
	"context"
	"errors"
	"time"

	repo "cartengine/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cart_blobs の1行（キー → JSON）
type CartBlob struct {
	Key       string    `gorm:"primaryKey;type:varchar(255);column:cart_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (CartBlob) TableName() string {
	return "cart_blobs"
}

type BlobGormRepository struct {
	db *gorm.DB
}

// DI
func NewBlobGormRepository(db *gorm.DB) *BlobGormRepository {
	return &BlobGormRepository{db: db}
}

func (r *BlobGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&CartBlob{})
}

func (r *BlobGormRepository) Get(ctx context.Context, key string) (string, error) {
	var b CartBlob

	err := r.db.WithContext(ctx).
		Where("cart_key = ?", key).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return b.Value, nil
}

// 丸ごと上書き（後勝ち）
func (r *BlobGormRepository) Put(ctx context.Context, key string, value string) error {
	b := CartBlob{Key: key, Value: value, UpdatedAt: time.Now()}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&b).Error
}
