package view_test

import (
	"testing"

	"cartengine/internal/domain/model"
	"cartengine/internal/view"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	var c model.Cart
	assert.Equal(t, view.CounterViewModel{Visible: false, Count: 0}, view.Counter(c))

	_, _ = c.Add(model.ProductCandidate{Title: "Mug", Price: "$9.99"})
	_, _ = c.Add(model.ProductCandidate{Title: "Mug", Price: "$9.99"})
	_, _ = c.Add(model.ProductCandidate{Title: "Tea", Price: 4})

	assert.Equal(t, view.CounterViewModel{Visible: true, Count: 3}, view.Counter(c))
}

func TestCartPage_Empty(t *testing.T) {
	vm := view.CartPage(model.Cart{})

	assert.Empty(t, vm.Rows)
	assert.NotNil(t, vm.Rows)
	assert.False(t, vm.FooterVisible)
	assert.True(t, vm.Empty)
	assert.Equal(t, view.EmptyCartMessage, vm.EmptyMessage)
	assert.Equal(t, 0.0, vm.Subtotal)
	assert.Equal(t, "$0.00", vm.FormattedSubtotal)
}

func TestCartPage_Rows(t *testing.T) {
	c := model.NewCart([]model.LineItem{
		{Title: "Mug", UnitPrice: 9.99, ImageRef: "mug.png", Quantity: 3},
		{Title: "Tea", UnitPrice: 4.5, ImageRef: "tea.png", Quantity: 1},
	})

	vm := view.CartPage(c)
	require.Len(t, vm.Rows, 2)

	assert.Equal(t, view.CartRow{
		Index:              0,
		Identity:           "Mug_9.99",
		Title:              "Mug",
		ImageRef:           "mug.png",
		UnitPrice:          9.99,
		Quantity:           3,
		LineTotal:          29.97,
		FormattedUnitPrice: "$9.99",
		FormattedLineTotal: "$29.97",
	}, vm.Rows[0])
	assert.Equal(t, 1, vm.Rows[1].Index)
	assert.Equal(t, "$4.50", vm.Rows[1].FormattedUnitPrice)

	assert.Equal(t, 34.47, vm.Subtotal)
	assert.Equal(t, "$34.47", vm.FormattedSubtotal)
	assert.True(t, vm.FooterVisible)
	assert.False(t, vm.Empty)
	assert.Empty(t, vm.EmptyMessage)
}

func TestCartPage_DoesNotMutate(t *testing.T) {
	c := model.NewCart([]model.LineItem{{Title: "Mug", UnitPrice: 9.99, Quantity: 1}})

	vm := view.CartPage(c)
	vm.Rows[0].Quantity = 10

	it, _ := c.At(0)
	assert.Equal(t, 1, it.Quantity)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$12.30", view.FormatMoney(decimal.NewFromFloat(12.3)))
	assert.Equal(t, "$0.10", view.FormatMoney(decimal.NewFromFloat(0.1)))
	assert.Equal(t, "$1299.00", view.FormatMoney(decimal.NewFromInt(1299)))
}
