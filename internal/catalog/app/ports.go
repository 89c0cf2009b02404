package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ProductSource supplies the full, read-only product list.
type ProductSource interface {
	List(ctx context.Context) ([]domain.Product, error)
}
