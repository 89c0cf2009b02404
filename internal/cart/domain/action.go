package domain

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

type ActionType string

const (
	ActionAdd      ActionType = "ADD"
	ActionRemove   ActionType = "REMOVE"
	ActionQuantity ActionType = "QUANTITY"
	ActionSubmit   ActionType = "SUBMIT"
)

func (t ActionType) String() string {
	return string(t)
}

// ParseActionType accepts the wire names of the four cart actions in any case.
func ParseActionType(s string) (ActionType, error) {
	switch t := ActionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case ActionAdd, ActionRemove, ActionQuantity, ActionSubmit:
		return t, nil
	default:
		return "", errors.Wrapf(ErrInvalidAction, "%q", s)
	}
}

// Payload carries the fields an action needs. Which fields matter depends on
// the action: ADD reads SKU, Name and Price; REMOVE reads SKU; QUANTITY reads
// SKU and Qty.
type Payload struct {
	SKU   string
	Name  string
	Price decimal.Decimal
	Qty   int
}

type Action struct {
	Type    ActionType
	Payload *Payload
}

func Add(sku, name string, price decimal.Decimal) Action {
	return Action{Type: ActionAdd, Payload: &Payload{SKU: sku, Name: name, Price: price}}
}

func Remove(sku string) Action {
	return Action{Type: ActionRemove, Payload: &Payload{SKU: sku}}
}

func SetQuantity(sku string, qty int) Action {
	return Action{Type: ActionQuantity, Payload: &Payload{SKU: sku, Qty: qty}}
}

func Submit() Action {
	return Action{Type: ActionSubmit}
}
