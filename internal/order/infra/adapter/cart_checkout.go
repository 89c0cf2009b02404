package adapter

import (
	"context"
	"log/slog"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

// CartCheckout turns a submitted cart into a pending order.
type CartCheckout struct {
	svc *orderapp.Service
	log *slog.Logger
}

func NewCartCheckout(svc *orderapp.Service, log *slog.Logger) *CartCheckout {
	if log == nil {
		log = slog.Default()
	}
	return &CartCheckout{svc: svc, log: log}
}

func (c *CartCheckout) OnSubmit(ctx context.Context, items []cartdomain.LineItem) error {
	req := orderdomain.PlaceOrderRequest{
		Currency: orderapp.DefaultCurrency,
		Items:    make([]orderdomain.OrderItemRequest, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, orderdomain.OrderItemRequest{
			SKU:       it.SKU,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Qty,
		})
	}

	order, err := c.svc.PlaceOrder(ctx, req)
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.Int("total_items", order.TotalItems),
		slog.String("subtotal", order.SubTotal.StringFixed(2)),
	)
	return nil
}
