package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

const (
	OrderStatusPending = "PENDING"
	DefaultCurrency    = "USD"
)

var (
	ErrEmptyOrder   = errors.New("order has no items")
	ErrInvalidOrder = errors.New("invalid order")
	ErrNotFound     = errors.New("order not found")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// PlaceOrder records a pending order for the given lines. Payment is not
// taken here.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, ErrEmptyOrder
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	subTotal := decimal.Zero
	totalItems := 0

	for i, item := range req.Items {
		if strings.TrimSpace(item.SKU) == "" {
			return domain.OrderResponse{}, fmt.Errorf("item %d: sku is required: %w", i, ErrInvalidOrder)
		}
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, fmt.Errorf("item %d: quantity must be positive, got %d: %w", i, item.Quantity, ErrInvalidOrder)
		}
		if item.UnitPrice.IsNegative() {
			return domain.OrderResponse{}, fmt.Errorf("item %d: unit price cannot be negative, got %s: %w", i, item.UnitPrice, ErrInvalidOrder)
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, domain.OrderItem{
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})

		subTotal = subTotal.Add(lineTotal)
		totalItems += item.Quantity
	}

	order := domain.Order{
		Status:     OrderStatusPending,
		Currency:   currency,
		TotalItems: totalItems,
		SubTotal:   subTotal,
		OrderItems: orderItems,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:         created.ID,
		Status:     created.Status,
		TotalItems: created.TotalItems,
		SubTotal:   created.SubTotal,
		CreatedAt:  created.CreatedAt,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Order{}, fmt.Errorf("order id is required: %w", ErrInvalidOrder)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
