package domain

import (
	"fmt"

	errs "github.com/solemate/solemate-backend/internal/pkg/errors"
)

// ProductNotFoundError reports a lookup for a product id that does not
// exist. It unwraps to errs.ErrNotFound so callers can match by sentinel.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return errs.ErrNotFound }

// ValidationError carries a single aggregated human-readable message for
// bad entity data. It unwraps to errs.ErrInvalidArgument.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "invalid data"
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return errs.ErrInvalidArgument }

// ChatError wraps any failure of the chat processing flow. It is applied
// once at the orchestration boundary, never re-wrapped per layer.
type ChatError struct {
	Err error
}

func (e *ChatError) Error() string {
	if e.Err == nil {
		return "chat service error"
	}
	return fmt.Sprintf("failed to process chat message: %v", e.Err)
}

func (e *ChatError) Unwrap() error { return e.Err }
