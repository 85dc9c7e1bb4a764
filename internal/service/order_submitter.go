package service

import (
	"context"
	"strings"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitPhase is how far a submission got through its write sequence.
type SubmitPhase int

const (
	PhaseNone SubmitPhase = iota
	PhaseOrderCreated
	PhaseItemsCreated
)

func (p SubmitPhase) String() string {
	switch p {
	case PhaseOrderCreated:
		return "order_created"
	case PhaseItemsCreated:
		return "items_created"
	default:
		return "none"
	}
}

type CustomerInput struct {
	Name  string
	Phone string
}

// SubmitResult is returned on success and on failure. OrderID is set once the
// order row exists, so an OrderItemsError still carries it.
type SubmitResult struct {
	OrderID uuid.UUID
	Phase   SubmitPhase
}

type OrderSubmitter struct {
	orders OrderWriter
	events OrderEvents
	log    *zap.Logger
	now    func() time.Time
}

// NewOrderSubmitter wires the checkout flow. events may be nil.
func NewOrderSubmitter(orders OrderWriter, events OrderEvents, log *zap.Logger) *OrderSubmitter {
	return &OrderSubmitter{
		orders: orders,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// ValidateCustomer returns the trimmed name and the digits-only phone.
func ValidateCustomer(in CustomerInput) (string, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", &ValidationError{Field: FieldName, Message: "name is required"}
	}

	phone := digitsOnly(in.Phone)
	if len(phone) != 10 && len(phone) != 11 {
		return "", "", &ValidationError{Field: FieldPhone, Message: "phone must have 10 or 11 digits including area code"}
	}
	return name, phone, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildOrderItems emits one row per (product, size) with a positive quantity.
func BuildOrderItems(orderID uuid.UUID, sum cart.Summary) []models.OrderItem {
	var items []models.OrderItem
	for _, it := range sum.SelectedItems() {
		for _, sq := range it.Sizes {
			if sq.Quantity <= 0 {
				continue
			}
			items = append(items, models.OrderItem{
				OrderID:   orderID,
				ProductID: it.Product.ID,
				Size:      sq.Size,
				Quantity:  sq.Quantity,
				Price:     it.Product.UnitPrice,
			})
		}
	}
	return items
}

// Submit validates the cart and the customer, then writes the order and its
// items as two separate calls. A failure in the second call leaves the order
// row without items and is reported as *OrderItemsError.
func (s *OrderSubmitter) Submit(ctx context.Context, sum cart.Summary, in CustomerInput) (SubmitResult, error) {
	res := SubmitResult{Phase: PhaseNone}

	if sum.TotalQuantity <= 0 {
		return res, ErrEmptyCart
	}

	name, phone, err := ValidateCustomer(in)
	if err != nil {
		return res, err
	}

	orderID, err := s.orders.CreateOrder(ctx, name, phone, sum.TotalPrice)
	if err != nil {
		s.log.Error("create order failed", zap.String("customer", name), zap.Error(err))
		return res, &OrderCreationError{Err: err}
	}
	res.OrderID = orderID
	res.Phase = PhaseOrderCreated

	items := BuildOrderItems(orderID, sum)
	if err := s.orders.CreateOrderItems(ctx, items); err != nil {
		s.log.Error("create order items failed, order left without items",
			zap.String("order_id", orderID.String()),
			zap.Int("items", len(items)),
			zap.Error(err),
		)
		return res, &OrderItemsError{OrderID: orderID, Err: err}
	}
	res.Phase = PhaseItemsCreated

	s.log.Info("order submitted",
		zap.String("order_id", orderID.String()),
		zap.Int("items", len(items)),
		zap.String("total", sum.TotalPrice.StringFixed(2)),
	)

	if s.events != nil {
		if err := s.events.PublishOrderPlaced(ctx, OrderPlacedEvent{
			OrderID:       orderID,
			CustomerName:  name,
			TotalAmount:   sum.TotalPrice,
			TotalQuantity: sum.TotalQuantity,
			CreatedAt:     s.now(),
		}); err != nil {
			s.log.Warn("publish order placed failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
	}

	return res, nil
}
