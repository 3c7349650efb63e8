package orderControllers

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart means checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderPlacementFailed covers any persistence failure while creating
	// the order or its items. The cart is left untouched so the user can
	// retry.
	ErrOrderPlacementFailed = errors.New("failed to place order")
)

// ValidationError names the first checkout field that failed validation.
// Validation runs before any write is issued.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.Field)
}
