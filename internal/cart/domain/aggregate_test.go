package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		assert.Equal(t, 0, TotalItems(Empty()))
		assert.True(t, TotalPrice(Empty()).IsZero())
	})

	t.Run("sum of qty and qty times price", func(t *testing.T) {
		c := New(
			LineItem{SKU: "item0001", Name: "Widget", Price: price("9.99"), Qty: 2},
			LineItem{SKU: "item0002", Name: "Premium Widget", Price: price("19.99"), Qty: 1},
		)
		assert.Equal(t, 3, TotalItems(c))
		assert.True(t, price("39.97").Equal(TotalPrice(c)), "got %s", TotalPrice(c))
	})
}

func TestDisplayOrder(t *testing.T) {
	c := New(
		LineItem{SKU: "item0003", Qty: 1},
		LineItem{SKU: "item0001", Qty: 1},
		LineItem{SKU: "item0002", Qty: 1},
	)

	got := DisplayOrder(c)
	assert.Equal(t, []string{"item0001", "item0002", "item0003"}, skus(got))
	assert.Equal(t, []string{"item0003", "item0001", "item0002"}, skus(c.Items()), "cart order untouched")
}

func TestDisplayOrderNonNumericLast(t *testing.T) {
	c := New(
		LineItem{SKU: "gift-card", Qty: 1},
		LineItem{SKU: "item0010", Qty: 1},
		LineItem{SKU: "promo", Qty: 1},
		LineItem{SKU: "item0002", Qty: 1},
	)

	assert.Equal(t, []string{"item0002", "item0010", "gift-card", "promo"}, skus(DisplayOrder(c)))
}

func TestSKUOrdinal(t *testing.T) {
	n, ok := SKUOrdinal("item0002")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = SKUOrdinal("item1234")
	assert.True(t, ok)
	assert.Equal(t, 1234, n)

	n, ok = SKUOrdinal("box   7")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = SKUOrdinal("42")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, sku := range []string{"itemABCD", "item1e03", "item    ", ""} {
		_, ok = SKUOrdinal(sku)
		assert.False(t, ok, sku)
	}
}

func skus(items []LineItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SKU)
	}
	return out
}
