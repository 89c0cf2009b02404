package static

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Source serves a fixed product list.
type Source struct {
	products []domain.Product
}

func NewSource(products ...domain.Product) *Source {
	if len(products) == 0 {
		products = Default()
	}
	return &Source{products: products}
}

func (s *Source) List(ctx context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

// Default is the storefront's built-in catalog.
func Default() []domain.Product {
	return []domain.Product{
		{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99")},
		{SKU: "item0002", Name: "Premium Widget", Price: decimal.RequireFromString("19.99")},
		{SKU: "item0003", Name: "Deluxe Widget", Price: decimal.RequireFromString("29.99")},
	}
}
