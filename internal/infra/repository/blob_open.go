package repository

import (
	"context"
	"fmt"

	"cartengine/internal/config"
	"cartengine/internal/infra/db"
	repo "cartengine/internal/repository"

	"gorm.io/gorm"
)

// 設定の STORE_DRIVER からBlobStoreを作る。closeは必ず呼ぶ。
func OpenBlobStore(ctx context.Context, cfg config.Config) (repo.BlobStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewBlobMemoryRepository(), noop, nil

	case config.StoreSQLite:
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		r := NewBlobSQLiteRepository(sqlDB)
		if err := r.EnsureTable(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("ensure table: %w", err)
		}
		return r, sqlDB.Close, nil

	case config.StorePostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		return openGormBlobStore(ctx, gormDB)

	case config.StoreRedis:
		client := db.NewRedisClient(cfg)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		return NewBlobRedisRepository(client, "", 0), client.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
}

// テーブル作成に失敗したら接続も閉じる
func openGormBlobStore(ctx context.Context, gormDB *gorm.DB) (repo.BlobStore, func() error, error) {
	closeFn := func() error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	r := NewBlobGormRepository(gormDB)
	if err := r.Migrate(ctx); err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, fmt.Errorf("migrate: %w", err)
	}
	return r, closeFn, nil
}
