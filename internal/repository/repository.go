package repository

import (
	"context"

	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	DB         *gorm.DB
	Products   ProductRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Products:   NewProductRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// CreateOrder and CreateOrderItems are the two independent checkout writes.
// They run as separate statements with no shared transaction.
func (r *Repository) CreateOrder(ctx context.Context, customerName, customerPhone string, total decimal.Decimal) (uuid.UUID, error) {
	o := &models.Order{
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
	}
	if err := r.Orders.Create(ctx, o); err != nil {
		return uuid.Nil, err
	}
	return o.ID, nil
}

func (r *Repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return r.OrderItems.BulkCreate(ctx, items)
}
