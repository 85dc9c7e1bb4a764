package service_test

import (
	"context"
	"time"

	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MockOrderWriter struct {
	CreateOrderFunc      func(ctx context.Context, name, phone string, total decimal.Decimal) (uuid.UUID, error)
	CreateOrderItemsFunc func(ctx context.Context, items []models.OrderItem) error

	CreateOrderCalls      int
	CreateOrderItemsCalls int
}

func (m *MockOrderWriter) CreateOrder(ctx context.Context, name, phone string, total decimal.Decimal) (uuid.UUID, error) {
	m.CreateOrderCalls++
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, name, phone, total)
	}
	return uuid.New(), nil
}

func (m *MockOrderWriter) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	m.CreateOrderItemsCalls++
	if m.CreateOrderItemsFunc != nil {
		return m.CreateOrderItemsFunc(ctx, items)
	}
	return nil
}

type MockOrderReader struct {
	ListWithItemsFunc func(ctx context.Context, sort service.OrderSort) ([]models.Order, error)
}

func (m *MockOrderReader) ListWithItems(ctx context.Context, sort service.OrderSort) ([]models.Order, error) {
	if m.ListWithItemsFunc != nil {
		return m.ListWithItemsFunc(ctx, sort)
	}
	return nil, nil
}

type MockStatusWriter struct {
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status models.OrderStatus) (bool, error)
}

func (m *MockStatusWriter) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (bool, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return true, nil
}

type MockEvents struct {
	Placed  []service.OrderPlacedEvent
	Changed []service.OrderStatusChangedEvent
	Err     error
}

func (m *MockEvents) PublishOrderPlaced(ctx context.Context, e service.OrderPlacedEvent) error {
	m.Placed = append(m.Placed, e)
	return m.Err
}

func (m *MockEvents) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	m.Changed = append(m.Changed, e)
	return m.Err
}

type MockProductReader struct {
	ListActiveFunc func(ctx context.Context) ([]models.Product, error)
	Calls          int
}

func (m *MockProductReader) ListActive(ctx context.Context) ([]models.Product, error) {
	m.Calls++
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type MemoryCatalogCache struct {
	Data   []byte
	GetErr error
	SetErr error
}

func (m *MemoryCatalogCache) GetCatalog(ctx context.Context) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Data, nil
}

func (m *MemoryCatalogCache) SetCatalog(ctx context.Context, data []byte, ttl time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data = data
	return nil
}

func (m *MemoryCatalogCache) InvalidateCatalog(ctx context.Context) error {
	m.Data = nil
	return nil
}
