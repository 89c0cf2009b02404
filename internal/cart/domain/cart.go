package domain

import "github.com/shopspring/decimal"

type LineItem struct {
	SKU   string
	Name  string
	Price decimal.Decimal
	Qty   int
}

// Cart is an immutable, ordered collection of line items with unique SKUs.
// The zero value is an empty cart.
type Cart struct {
	items []LineItem
}

func Empty() Cart {
	return Cart{}
}

// New builds a cart from items as given. It is meant for restoring a known
// state (tests, fixtures); callers must keep SKUs unique.
func New(items ...LineItem) Cart {
	if len(items) == 0 {
		return Cart{}
	}
	return Cart{items: append([]LineItem(nil), items...)}
}

func (c Cart) Items() []LineItem {
	if len(c.items) == 0 {
		return nil
	}
	return append([]LineItem(nil), c.items...)
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Cart) Find(sku string) (LineItem, bool) {
	idx := c.indexOf(sku)
	if idx < 0 {
		return LineItem{}, false
	}
	return c.items[idx], true
}

func (c Cart) indexOf(sku string) int {
	for i, item := range c.items {
		if item.SKU == sku {
			return i
		}
	}
	return -1
}
