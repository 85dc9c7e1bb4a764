package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"

	"go.uber.org/zap"
)

type CatalogService struct {
	products ProductReader
	cache    CatalogCache
	ttl      time.Duration
	log      *zap.Logger
}

// NewCatalogService reads the catalog from products, optionally through cache.
// A nil cache disables caching.
func NewCatalogService(products ProductReader, cache CatalogCache, ttl time.Duration, log *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

// Snapshot returns the active catalog. Cache errors fall back to the database.
func (s *CatalogService) Snapshot(ctx context.Context) ([]cart.Product, error) {
	if s.cache != nil {
		if raw, err := s.cache.GetCatalog(ctx); err == nil && len(raw) > 0 {
			var cached []cart.Product
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			s.log.Warn("catalog cache corrupted, reloading")
		}
	}

	rows, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogNotReady, err)
	}
	out := toCartProducts(rows)

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.SetCatalog(ctx, raw, s.ttl); err != nil {
				s.log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return out, nil
}

// Refresh drops the cached snapshot and reloads it from the database.
func (s *CatalogService) Refresh(ctx context.Context) ([]cart.Product, error) {
	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(ctx); err != nil {
			s.log.Warn("catalog cache invalidate failed", zap.Error(err))
		}
	}
	products, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("catalog refreshed", zap.Int("products", len(products)))
	return products, nil
}

// NewStore opens a fresh selection store over the current snapshot.
func (s *CatalogService) NewStore(ctx context.Context) (*cart.Store, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cart.NewStore(products), nil
}

func toCartProducts(rows []models.Product) []cart.Product {
	out := make([]cart.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, cart.Product{
			ID:          p.ID,
			Name:        p.Name,
			UnitPrice:   p.Price,
			ImageURL:    p.ImageURL,
			Description: p.Description,
		})
	}
	return out
}
