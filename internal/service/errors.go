package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrCatalogNotReady = errors.New("catalog unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidPassword = errors.New("invalid password")
)

const (
	FieldName  = "name"
	FieldPhone = "phone"
)

// ValidationError reports a user-correctable problem with one input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// OrderCreationError means the order row was not written. The cart can be
// submitted again.
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string { return "create order: " + e.Err.Error() }
func (e *OrderCreationError) Unwrap() error { return e.Err }

// OrderItemsError means the order row exists but its items were not written.
// Retrying the submission creates a second order.
type OrderItemsError struct {
	OrderID uuid.UUID
	Err     error
}

func (e *OrderItemsError) Error() string {
	return fmt.Sprintf("create items for order %s: %v", e.OrderID, e.Err)
}
func (e *OrderItemsError) Unwrap() error { return e.Err }
