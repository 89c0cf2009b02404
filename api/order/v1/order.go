// Package orderv1 defines the wire messages and gRPC service for reading
// orders placed by submitting the cart.
package orderv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Order struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Currency   string          `json:"currency"`
	TotalItems int             `json:"totalItems"`
	SubTotal   decimal.Decimal `json:"subtotal"`
	TotalPrice string          `json:"totalPrice"`
	Items      []OrderItem     `json:"items"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type GetOrderRequest struct {
	ID string `json:"id"`
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

type ListOrdersRequest struct{}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}
