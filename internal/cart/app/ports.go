package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CheckoutHook receives the line items of a cart that is being submitted,
// before the cart is cleared. Returning an error keeps the cart intact.
type CheckoutHook interface {
	OnSubmit(ctx context.Context, items []domain.LineItem) error
}

type NopCheckout struct{}

func (NopCheckout) OnSubmit(context.Context, []domain.LineItem) error { return nil }
