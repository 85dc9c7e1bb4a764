package service

import (
	"context"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderWriter is the two-call persistence contract of checkout. The calls are
// independent; no transaction spans them.
type OrderWriter interface {
	CreateOrder(ctx context.Context, customerName, customerPhone string, total decimal.Decimal) (uuid.UUID, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
}

type OrderSort string

const (
	SortByCreatedAt    OrderSort = "created_at"
	SortByCustomerName OrderSort = "customer_name"
)

func ParseOrderSort(s string) OrderSort {
	if OrderSort(s) == SortByCustomerName {
		return SortByCustomerName
	}
	return SortByCreatedAt
}

// OrderReader loads orders joined with their items and product names.
type OrderReader interface {
	ListWithItems(ctx context.Context, sort OrderSort) ([]models.Order, error)
}

type StatusWriter interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (bool, error)
}

type ProductReader interface {
	ListActive(ctx context.Context) ([]models.Product, error)
}

type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]byte, error)
	SetCatalog(ctx context.Context, data []byte, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error
}

type OrderPlacedEvent struct {
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int             `json:"total_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID          `json:"order_id"`
	Status    models.OrderStatus `json:"status"`
	ChangedAt time.Time          `json:"changed_at"`
}

type OrderEvents interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlacedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
}
