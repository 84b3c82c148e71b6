package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// 価格表記（数値 or "$12.99" のような文字列）を数値にする。
// 解釈できないものは0を返す。正の値かどうかは呼び出し側で見る。
func ParsePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int8:
		return float64(p)
	case int16:
		return float64(p)
	case int32:
		return float64(p)
	case int64:
		return float64(p)
	case uint:
		return float64(p)
	case uint8:
		return float64(p)
	case uint16:
		return float64(p)
	case uint32:
		return float64(p)
	case uint64:
		return float64(p)
	case json.Number:
		// 数値なので符号や指数はそのまま
		n, err := p.Float64()
		if err != nil {
			return 0
		}
		return n
	case string:
		return parsePriceText(p)
	default:
		return 0
	}
}

func parsePriceText(s string) float64 {
	//数字と小数点以外は捨てる
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	n, err := strconv.ParseFloat(leadingDecimal(b.String()), 64)
	if err != nil {
		return 0
	}
	return n
}

// 先頭から読める "digits[.digits]" の部分だけを返す（"1.2.3" → "1.2"）
func leadingDecimal(s string) string {
	dot := false
	digits := 0
	for i, r := range s {
		if r == '.' {
			if dot {
				return s[:i]
			}
			dot = true
			continue
		}
		digits++
	}
	if digits == 0 {
		return ""
	}
	return s
}
