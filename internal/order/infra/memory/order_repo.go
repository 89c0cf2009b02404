package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
)

// OrderRepo keeps orders for the lifetime of the process.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	ids    []string
	now    func() time.Time
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders: make(map[string]domain.Order),
		now:    time.Now,
	}
}

func (r *OrderRepo) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	order.ID = uuid.NewString()
	order.CreatedAt = r.now().UTC()
	order.OrderItems = append([]domain.OrderItem(nil), order.OrderItems...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	r.ids = append(r.ids, order.ID)
	return order, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, app.ErrNotFound)
	}
	return order, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.orders[id])
	}
	return out, nil
}

func (r *OrderRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
