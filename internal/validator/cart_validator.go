package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"cartengine/internal/domain/model"
)

var (
	// タイトルが空
	ErrTitleRequired = errors.New("title required")

	// タイトルが長すぎる
	ErrTitleTooLong = errors.New("title too long")

	// priceが文字列でも数値でもない
	ErrInvalidPriceType = errors.New("price must be string or number")
)

const maxTitleLen = 255

// POST /cart/items の入力
type AddItemInput struct {
	Title string          `json:"title"`
	Price json.RawMessage `json:"price"`
	Image string          `json:"image"`
}

// 追加リクエストを検証して候補に変換する
// 価格が正かどうかはカート側で判定する。
func ValidateAddItem(in AddItemInput) (model.ProductCandidate, error) {
	title := strings.TrimSpace(in.Title)

	// 必須チェック
	if title == "" {
		return model.ProductCandidate{}, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return model.ProductCandidate{}, ErrTitleTooLong
	}

	price, err := decodePrice(in.Price)
	if err != nil {
		return model.ProductCandidate{}, err
	}

	return model.ProductCandidate{
		Title:    title,
		Price:    price,
		ImageRef: strings.TrimSpace(in.Image),
	}, nil
}

// "$9.99" → string, 9.99 → json.Number
func decodePrice(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrInvalidPriceType
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, ErrInvalidPriceType
		}
		return s, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, ErrInvalidPriceType
		}
		n, ok := v.(json.Number)
		if !ok {
			return nil, ErrInvalidPriceType
		}
		return n, nil
	}
}
