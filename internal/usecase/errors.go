package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"cartengine/internal/domain/model"
)

// 保存に失敗（メモリ上のカートは変更済み）
var ErrSaveFailed = errors.New("cart save failed")

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カート操作のエラーをHTTPに寄せる
// 範囲外・該当なしは no-op なのでここには来ない想定
func ToHTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	case errors.Is(err, model.ErrEmptyTitle):
		return NewHTTPError(http.StatusBadRequest, "title required")
	case errors.Is(err, ErrSaveFailed):
		return NewHTTPError(http.StatusInternalServerError, "store error")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// 利用者に見せない、握りつぶしてよいエラー
func IsNoop(err error) bool {
	return errors.Is(err, model.ErrIndexOutOfRange) || errors.Is(err, model.ErrLineNotFound)
}
