package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         string
	Status     string
	Currency   string
	TotalItems int
	SubTotal   decimal.Decimal
	OrderItems []OrderItem
	CreatedAt  time.Time
}

type OrderItem struct {
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type PlaceOrderRequest struct {
	Currency string
	Items    []OrderItemRequest
}

type OrderItemRequest struct {
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type OrderResponse struct {
	ID         string
	Status     string
	TotalItems int
	SubTotal   decimal.Decimal
	CreatedAt  time.Time
}
