package model

import (
	"strconv"
)

// 同一商品の判定キー（タイトルと単価の完全一致）
type Identity struct {
	Title     string
	UnitPrice float64
}

func ResolveIdentity(title string, unitPrice float64) Identity {
	return Identity{Title: title, UnitPrice: unitPrice}
}

// 保存用の文字列表現（"Mug_9.99"）
func (id Identity) String() string {
	return id.Title + "_" + strconv.FormatFloat(id.UnitPrice, 'f', -1, 64)
}

// カートの明細
// 単価は追加時点で固定。
type LineItem struct {
	Title     string
	UnitPrice float64
	ImageRef  string
	Quantity  int
}

func (it LineItem) Identity() Identity {
	return ResolveIdentity(it.Title, it.UnitPrice)
}

func (it LineItem) LineTotal() float64 {
	return it.UnitPrice * float64(it.Quantity)
}

// 商品一覧などから渡される追加候補
// Priceは数値でも "$9.99" のような文字列でもよい。
type ProductCandidate struct {
	Title    string
	Price    any
	ImageRef string
}
