package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// OpenSQLite はローカルのsqliteファイルを開く（":memory:" も可）
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	//書き込みは1本に絞る
	db.SetMaxOpenConns(1)
	return db, nil
}
