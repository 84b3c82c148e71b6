// Package view はカートから画面用の値を作る。カートは書き換えない。
package view

import (
	"cartengine/internal/domain/model"

	"github.com/shopspring/decimal"
)

const EmptyCartMessage = "Your cart is empty."

// ヘッダーのカート件数バッジ
type CounterViewModel struct {
	Visible bool `json:"visible"`
	Count   int  `json:"count"`
}

// カートページの1行
// Indexは描画ごとに振り直す位置（保存しない）
type CartRow struct {
	Index              int     `json:"index"`
	Identity           string  `json:"identity"`
	Title              string  `json:"title"`
	ImageRef           string  `json:"image_ref"`
	UnitPrice          float64 `json:"unit_price"`
	Quantity           int     `json:"quantity"`
	LineTotal          float64 `json:"line_total"`
	FormattedUnitPrice string  `json:"formatted_unit_price"`
	FormattedLineTotal string  `json:"formatted_line_total"`
}

type CartPageViewModel struct {
	Rows              []CartRow `json:"rows"`
	Subtotal          float64   `json:"subtotal"`
	FormattedSubtotal string    `json:"formatted_subtotal"`
	FooterVisible     bool      `json:"footer_visible"`
	Empty             bool      `json:"empty"`
	EmptyMessage      string    `json:"empty_message,omitempty"`
}

func Counter(c model.Cart) CounterViewModel {
	n := c.TotalQuantity()
	return CounterViewModel{Visible: n > 0, Count: n}
}

func CartPage(c model.Cart) CartPageViewModel {
	items := c.Items()
	if len(items) == 0 {
		return CartPageViewModel{
			Rows:              []CartRow{},
			FormattedSubtotal: FormatMoney(decimal.Zero),
			Empty:             true,
			EmptyMessage:      EmptyCartMessage,
		}
	}

	rows := make([]CartRow, 0, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		lineTotal := model.LineTotalDecimal(it)
		subtotal = subtotal.Add(lineTotal)

		rows = append(rows, CartRow{
			Index:              i,
			Identity:           it.Identity().String(),
			Title:              it.Title,
			ImageRef:           it.ImageRef,
			UnitPrice:          it.UnitPrice,
			Quantity:           it.Quantity,
			LineTotal:          lineTotal.InexactFloat64(),
			FormattedUnitPrice: FormatMoney(decimal.NewFromFloat(it.UnitPrice)),
			FormattedLineTotal: FormatMoney(lineTotal),
		})
	}

	return CartPageViewModel{
		Rows:              rows,
		Subtotal:          subtotal.InexactFloat64(),
		FormattedSubtotal: FormatMoney(subtotal),
		FooterVisible:     true,
	}
}

// "$12.30" 形式（小数2桁）
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
