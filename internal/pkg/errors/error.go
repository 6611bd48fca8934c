package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the engine.
var (
	ErrTokenMalformed  = errors.New("token is malformed")
	ErrFoodUnavailable = errors.New("food is not available")
	ErrCartEmpty       = errors.New("cart is empty")
)

// Wrap adds context to an error while keeping it matchable with errors.Is.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
