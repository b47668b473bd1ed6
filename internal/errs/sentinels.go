// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed or missing request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a uniqueness violation (username or email taken).
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication. The same error is
	// returned for a missing user and a wrong password so callers cannot
	// probe which accounts exist.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is authenticated but lacks the
	// required role or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransient indicates the store was unavailable or timed out;
	// the request is safe to retry.
	ErrTransient = errors.New("temporarily unavailable")
)

// InsufficientStockError rejects an order that asks for more units than the
// album has on hand. Available carries the remaining quantity so the caller
// can retry with a smaller order.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock, %d available", e.Available)
}
