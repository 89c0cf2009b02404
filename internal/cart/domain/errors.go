package domain

import "github.com/go-faster/errors"

var (
	ErrMissingPayload  = errors.New("action payload missing")
	ErrItemNotInCart   = errors.New("item must exist to update quantity")
	ErrInvalidAction   = errors.New("invalid action type")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

// IsInvalidArgument reports whether err was caused by a malformed action
// rather than by the current cart contents.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrMissingPayload) ||
		errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice)
}
