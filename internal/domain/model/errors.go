package model

import "errors"

var (
	// 価格が0以下（または数値にできない）。追加は拒否。
	ErrInvalidPrice = errors.New("invalid price")
	// タイトルが空
	ErrEmptyTitle = errors.New("empty title")
	// 行番号が範囲外。何もしない。
	ErrIndexOutOfRange = errors.New("index out of range")
	// identityに一致する行が無い。何もしない。
	ErrLineNotFound = errors.New("line not found")
	// 保存済みカートが読めない。空カートで続行。
	ErrCorruptPersistedState = errors.New("corrupt persisted state")
)
