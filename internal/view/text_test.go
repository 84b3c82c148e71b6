package view_test

import (
	"bytes"
	"testing"

	"cartengine/internal/domain/model"
	"cartengine/internal/view"

	"github.com/stretchr/testify/assert"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := view.NewTextRenderer(&buf)

	r.RenderCounter(view.Counter(model.Cart{}))
	r.RenderCartPage(view.CartPage(model.Cart{}))
	assert.Equal(t, "Cart\nYour cart is empty.\n", buf.String())

	buf.Reset()
	c := model.NewCart([]model.LineItem{{Title: "Mug", UnitPrice: 9.99, Quantity: 2}})
	r.RenderCounter(view.Counter(c))
	r.RenderCartPage(view.CartPage(c))

	out := buf.String()
	assert.Contains(t, out, "Cart (2)\n")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "$19.98")
	assert.Contains(t, out, "Subtotal: $19.98\n")
}
