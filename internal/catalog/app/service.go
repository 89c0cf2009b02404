package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrBadCatalog marks product data from the source that fails Validate.
	ErrBadCatalog = errors.New("catalog source returned invalid products")
)

type Service struct {
	src ProductSource
}

func NewService(src ProductSource) *Service {
	return &Service{
		src: src,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := Validate(products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCatalog, err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, sku string) (domain.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.Product{}, ErrInvalidInput
	}

	products, err := s.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %s: %w", sku, ErrNotFound)
}

// Validate checks that every product has a unique non-blank SKU, a name and a
// non-negative price.
func Validate(products []domain.Product) error {
	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.SKU) == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("product %d: sku and name are required: %w", i, ErrInvalidInput)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("product %s: negative price %s: %w", p.SKU, p.Price, ErrInvalidInput)
		}
		if _, dup := seen[p.SKU]; dup {
			return fmt.Errorf("product %s: duplicate sku: %w", p.SKU, ErrInvalidInput)
		}
		seen[p.SKU] = struct{}{}
	}
	return nil
}
