package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// skuOrdinalWidth is the length of the zero-padded number that ends every
// catalog SKU ("item0002").
const skuOrdinalWidth = 4

func TotalItems(c Cart) int {
	total := 0
	for _, item := range c.items {
		total += item.Qty
	}
	return total
}

func TotalPrice(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// SKUOrdinal parses the last four characters of sku as a base-10 integer,
// ignoring surrounding whitespace ("box   7" and "item0007" both give 7). Other
// numeric notations such as exponents or hex are not ordinals.
func SKUOrdinal(sku string) (int, bool) {
	suffix := sku
	if len(sku) > skuOrdinalWidth {
		suffix = sku[len(sku)-skuOrdinalWidth:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(suffix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// DisplayOrder returns the line items sorted by SKU ordinal. The sort is
// stable; items without a numeric ordinal go last.
func DisplayOrder(c Cart) []LineItem {
	items := c.Items()
	slices.SortStableFunc(items, func(a, b LineItem) int {
		na, okA := SKUOrdinal(a.SKU)
		nb, okB := SKUOrdinal(b.SKU)
		switch {
		case okA && okB:
			return na - nb
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return items
}
