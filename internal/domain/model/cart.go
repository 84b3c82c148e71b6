package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// 追加順を保った明細の並び
// identityは重複しない / quantity >= 1 / unitPrice >= 0
type Cart struct {
	items []LineItem
}

// 保存済みの明細からカートを組み立てる。
// 不変条件を満たさない行は捨て、重複identityは先頭行にまとめる。
func NewCart(items []LineItem) Cart {
	c := Cart{items: make([]LineItem, 0, len(items))}
	for _, it := range items {
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		if it.Quantity < 0 || strings.TrimSpace(it.Title) == "" || !validPrice(it.UnitPrice) {
			continue
		}
		if i := c.indexOf(it.Identity()); i >= 0 {
			c.items[i].Quantity += it.Quantity
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

// 別のカートとして複製する
func (c Cart) Clone() Cart {
	return Cart{items: c.Items()}
}

// 明細のコピーを返す
func (c Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Cart) At(index int) (LineItem, bool) {
	if index < 0 || index >= len(c.items) {
		return LineItem{}, false
	}
	return c.items[index], true
}

func (c Cart) Find(id Identity) (LineItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return c.items[i], true
}

// 合計数量（毎回計算する）
func (c Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// 小計（毎回計算する）
func (c Cart) Subtotal() float64 {
	return c.SubtotalDecimal().InexactFloat64()
}

func (c Cart) SubtotalDecimal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(LineTotalDecimal(it))
	}
	return sum
}

func LineTotalDecimal(it LineItem) decimal.Decimal {
	return decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// 同一商品なら数量+1、無ければ末尾に追加
func (c *Cart) Add(candidate ProductCandidate) (LineItem, error) {
	price := ParsePrice(candidate.Price)
	if !validPrice(price) || price <= 0 {
		return LineItem{}, ErrInvalidPrice
	}
	if strings.TrimSpace(candidate.Title) == "" {
		return LineItem{}, ErrEmptyTitle
	}

	id := ResolveIdentity(candidate.Title, price)
	if i := c.indexOf(id); i >= 0 {
		// 既存行のタイトル・画像はそのまま
		c.items[i].Quantity++
		return c.items[i], nil
	}

	item := LineItem{
		Title:     candidate.Title,
		UnitPrice: price,
		ImageRef:  candidate.ImageRef,
		Quantity:  1,
	}
	c.items = append(c.items, item)
	return item, nil
}

func (c *Cart) Increment(index int) error {
	if !c.inRange(index) {
		return ErrIndexOutOfRange
	}
	c.items[index].Quantity++
	return nil
}

// 数量-1。0以下になったら行ごと消す（1で止めない）
func (c *Cart) Decrement(index int) error {
	if !c.inRange(index) {
		return ErrIndexOutOfRange
	}
	c.items[index].Quantity--
	if c.items[index].Quantity <= 0 {
		c.removeAt(index)
	}
	return nil
}

// 数量に関係なく行を消す
func (c *Cart) Remove(index int) error {
	if !c.inRange(index) {
		return ErrIndexOutOfRange
	}
	c.removeAt(index)
	return nil
}

func (c *Cart) IncrementByIdentity(id Identity) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrLineNotFound
	}
	return c.Increment(i)
}

func (c *Cart) DecrementByIdentity(id Identity) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrLineNotFound
	}
	return c.Decrement(i)
}

func (c *Cart) RemoveByIdentity(id Identity) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrLineNotFound
	}
	return c.Remove(i)
}

func (c Cart) indexOf(id Identity) int {
	for i, it := range c.items {
		if it.Identity() == id {
			return i
		}
	}
	return -1
}

func (c Cart) inRange(index int) bool {
	return index >= 0 && index < len(c.items)
}

func (c *Cart) removeAt(index int) {
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}
