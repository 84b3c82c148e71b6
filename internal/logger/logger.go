package logger

import (
	"go.uber.org/zap"
)

// GO_ENV=prod ならJSON、それ以外は開発用の出力
func New(goEnv string) (*zap.Logger, error) {
	if goEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// 失敗したら何も出さないロガーで続行する
func MustNew(goEnv string) *zap.Logger {
	l, err := New(goEnv)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
