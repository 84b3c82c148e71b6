package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	repo "cartengine/internal/repository"
)

// ローカルファイル（SQLite）のKV
// ドライバ(modernc.org/sqlite)は infra/db で登録する。
type BlobSQLiteRepository struct {
	db    *sql.DB
	table string
}

// DI
func NewBlobSQLiteRepository(db *sql.DB) *BlobSQLiteRepository {
	return &BlobSQLiteRepository{db: db, table: "cart_blobs"}
}

func (r *BlobSQLiteRepository) EnsureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	cart_key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL
)`, r.table)
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

func (r *BlobSQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	q := fmt.Sprintf(`SELECT value FROM %s WHERE cart_key = ?`, r.table)

	var v string
	err := r.db.QueryRowContext(ctx, q, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load blob: %w", err)
	}
	return v, nil
}

func (r *BlobSQLiteRepository) Put(ctx context.Context, key string, value string) error {
	q := fmt.Sprintf(`
INSERT INTO %s (cart_key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(cart_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, r.table)

	if _, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("save blob: %w", err)
	}
	return nil
}
