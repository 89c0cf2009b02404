package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
)

// Snapshot is the read surface of the cart: header totals plus the line
// items in display order.
type Snapshot struct {
	TotalItems int
	Subtotal   decimal.Decimal
	TotalPrice string
	Cart       []domain.LineItem
}

// Store owns the cart state of one storefront session. Dispatches are
// applied one at a time.
type Store struct {
	mu       sync.Mutex
	state    domain.Cart
	checkout CheckoutHook
	log      *slog.Logger
}

func NewStore(checkout CheckoutHook, log *slog.Logger) *Store {
	if checkout == nil {
		checkout = NopCheckout{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		state:    domain.Empty(),
		checkout: checkout,
		log:      log,
	}
}

// Dispatch applies action and returns the cart as it stands right after the
// action was committed.
func (s *Store) Dispatch(ctx context.Context, action domain.Action) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := domain.Reduce(s.state, action)
	if err != nil {
		s.log.WarnContext(ctx, "cart action rejected",
			slog.String("action", action.Type.String()),
			slog.String("sku", payloadSKU(action)),
			slog.Any("err", err),
		)
		return Snapshot{}, err
	}

	if action.Type == domain.ActionSubmit && !s.state.IsEmpty() {
		if err := s.checkout.OnSubmit(ctx, domain.DisplayOrder(s.state)); err != nil {
			s.log.ErrorContext(ctx, "checkout failed", slog.Any("err", err))
			return Snapshot{}, err
		}
	}

	s.state = next
	s.log.DebugContext(ctx, "cart action applied",
		slog.String("action", action.Type.String()),
		slog.String("sku", payloadSKU(action)),
		slog.Int("total_items", domain.TotalItems(next)),
		slog.String("total_price", domain.TotalPrice(next).StringFixed(2)),
	)
	return snapshotOf(next), nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	return snapshotOf(state)
}

func snapshotOf(state domain.Cart) Snapshot {
	subtotal := domain.TotalPrice(state)
	return Snapshot{
		TotalItems: domain.TotalItems(state),
		Subtotal:   subtotal,
		TotalPrice: money.USD(subtotal),
		Cart:       domain.DisplayOrder(state),
	}
}

func payloadSKU(action domain.Action) string {
	if action.Payload == nil {
		return ""
	}
	return action.Payload.SKU
}
