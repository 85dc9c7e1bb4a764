package repository

import (
	"context"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	ListActive(ctx context.Context) ([]models.Product, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

// Create writes every column so that IsActive=false is stored as given.
func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Select("*").Create(p).Error
}

func (r *productRepo) ListActive(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC, id ASC").Find(&list).Error
	return list, err
}
