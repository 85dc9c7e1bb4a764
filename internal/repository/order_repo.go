package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (bool, error)
	ListWithItems(ctx context.Context, sort service.OrderSort) ([]models.Order, error)
	ListWithoutItems(ctx context.Context, createdBefore time.Time) ([]models.Order, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

// UpdateStatus reports false when no order has the given id.
func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) ListWithItems(ctx context.Context, sort service.OrderSort) ([]models.Order, error) {
	order := "created_at DESC"
	if sort == service.SortByCustomerName {
		order = "customer_name ASC, created_at DESC"
	}

	var list []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Product").
		Order(order).
		Find(&list).Error
	return list, err
}

// ListWithoutItems returns orders created before the cutoff that have no
// order_items rows.
func (r *orderRepo) ListWithoutItems(ctx context.Context, createdBefore time.Time) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Where("created_at < ?", createdBefore).
		Where("NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id)").
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
