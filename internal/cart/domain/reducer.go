package domain

import (
	"strings"

	"github.com/go-faster/errors"
)

// Reduce returns the cart that results from applying action to state.
// It never modifies state; on error the returned cart is the zero value and
// must not be used.
func Reduce(state Cart, action Action) (Cart, error) {
	switch action.Type {
	case ActionAdd:
		return reduceAdd(state, action.Payload)
	case ActionRemove:
		return reduceRemove(state, action.Payload)
	case ActionQuantity:
		return reduceQuantity(state, action.Payload)
	case ActionSubmit:
		// Payment and order creation happen outside the reducer.
		return Empty(), nil
	default:
		return Cart{}, errors.Wrapf(ErrInvalidAction, "%q", string(action.Type))
	}
}

func reduceAdd(state Cart, p *Payload) (Cart, error) {
	if p == nil {
		return Cart{}, errors.Wrap(ErrMissingPayload, "ADD action")
	}
	sku := strings.TrimSpace(p.SKU)
	if sku == "" {
		return Cart{}, errors.Wrap(ErrMissingPayload, "ADD action: sku")
	}
	if p.Price.IsNegative() {
		return Cart{}, errors.Wrapf(ErrInvalidPrice, "ADD %s", sku)
	}

	idx := state.indexOf(sku)
	if idx < 0 {
		items := make([]LineItem, 0, len(state.items)+1)
		items = append(items, state.items...)
		items = append(items, LineItem{SKU: sku, Name: p.Name, Price: p.Price, Qty: 1})
		return Cart{items: items}, nil
	}

	items := state.Items()
	items[idx].Qty++
	return Cart{items: items}, nil
}

func reduceRemove(state Cart, p *Payload) (Cart, error) {
	if p == nil {
		return Cart{}, errors.Wrap(ErrMissingPayload, "REMOVE action")
	}
	return without(state, strings.TrimSpace(p.SKU)), nil
}

func reduceQuantity(state Cart, p *Payload) (Cart, error) {
	if p == nil {
		return Cart{}, errors.Wrap(ErrMissingPayload, "QUANTITY action")
	}

	sku := strings.TrimSpace(p.SKU)
	idx := state.indexOf(sku)
	if idx < 0 {
		return Cart{}, errors.Wrapf(ErrItemNotInCart, "QUANTITY %s", sku)
	}

	switch {
	case p.Qty < 0:
		return Cart{}, errors.Wrapf(ErrInvalidQuantity, "QUANTITY %s: %d", sku, p.Qty)
	case p.Qty == 0:
		return without(state, sku), nil
	}

	items := state.Items()
	items[idx].Qty = p.Qty
	return Cart{items: items}, nil
}

func without(state Cart, sku string) Cart {
	if state.indexOf(sku) < 0 {
		return state
	}

	items := make([]LineItem, 0, len(state.items)-1)
	for _, item := range state.items {
		if item.SKU != sku {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return Empty()
	}
	return Cart{items: items}
}
