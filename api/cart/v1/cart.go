// Package cartv1 defines the wire messages and gRPC service of the cart.
// Messages travel as JSON through the grpcjson codec.
package cartv1

import "github.com/shopspring/decimal"

type Payload struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name,omitempty"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty,omitempty"`
}

type DispatchRequest struct {
	Type    string   `json:"type"`
	Payload *Payload `json:"payload,omitempty"`
}

type GetCartRequest struct{}

type LineItem struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

type CartView struct {
	TotalItems int        `json:"totalItems"`
	TotalPrice string     `json:"totalPrice"`
	Cart       []LineItem `json:"cart"`
}
