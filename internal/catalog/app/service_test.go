package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type fakeSource struct {
	products []domain.Product
	err      error
}

func (f fakeSource) List(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func product(sku, name, price string) domain.Product {
	return domain.Product{SKU: sku, Name: name, Price: decimal.RequireFromString(price)}
}

func TestListProducts(t *testing.T) {
	svc := NewService(fakeSource{products: []domain.Product{
		product("item0002", "Premium Widget", "19.99"),
		product("item0001", "Widget", "9.99"),
	}})

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "item0002", got[0].SKU, "source order is kept")
}

func TestListProductsValidation(t *testing.T) {
	t.Run("blank sku -> bad catalog", func(t *testing.T) {
		svc := NewService(fakeSource{products: []domain.Product{product(" ", "Widget", "1")}})
		_, err := svc.ListProducts(context.Background())
		require.ErrorIs(t, err, ErrBadCatalog)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price -> bad catalog", func(t *testing.T) {
		svc := NewService(fakeSource{products: []domain.Product{product("item0001", "Widget", "-1")}})
		_, err := svc.ListProducts(context.Background())
		require.ErrorIs(t, err, ErrBadCatalog)
	})

	t.Run("duplicate sku -> bad catalog", func(t *testing.T) {
		svc := NewService(fakeSource{products: []domain.Product{
			product("item0001", "Widget", "1"),
			product("item0001", "Widget again", "2"),
		}})
		_, err := svc.ListProducts(context.Background())
		require.ErrorIs(t, err, ErrBadCatalog)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		boom := errors.New("connection refused")
		svc := NewService(fakeSource{err: boom})
		_, err := svc.ListProducts(context.Background())
		require.ErrorIs(t, err, boom)
	})
}

func TestGetProduct(t *testing.T) {
	svc := NewService(fakeSource{products: []domain.Product{product("item0001", "Widget", "9.99")}})

	p, err := svc.GetProduct(context.Background(), " item0001 ")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)

	_, err = svc.GetProduct(context.Background(), "item0009")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrBadCatalog)
}
