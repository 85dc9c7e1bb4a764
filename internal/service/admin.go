package service

import (
	"context"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SizeSummary maps product name to size to summed quantity.
type SizeSummary map[string]map[cart.Size]int

type AdminSummary struct {
	ApprovedSalesTotal  decimal.Decimal
	EstimatedGrandTotal decimal.Decimal
	SizeSummary         SizeSummary
	// Orders with no items, typically left behind by a failed second write.
	OrphanedOrders []uuid.UUID
}

// Aggregate derives every report figure from the order list in one pass.
// The grand total and size summary ignore status.
func Aggregate(orders []models.Order) AdminSummary {
	out := AdminSummary{
		ApprovedSalesTotal:  decimal.Zero,
		EstimatedGrandTotal: decimal.Zero,
		SizeSummary:         SizeSummary{},
	}

	for _, o := range orders {
		out.EstimatedGrandTotal = out.EstimatedGrandTotal.Add(o.TotalAmount)
		if o.Status == models.OrderStatusApproved {
			out.ApprovedSalesTotal = out.ApprovedSalesTotal.Add(o.TotalAmount)
		}
		if len(o.Items) == 0 {
			out.OrphanedOrders = append(out.OrphanedOrders, o.ID)
		}
		for _, it := range o.Items {
			name := it.ProductName()
			bySize, ok := out.SizeSummary[name]
			if !ok {
				bySize = make(map[cart.Size]int)
				out.SizeSummary[name] = bySize
			}
			bySize[it.Size] += it.Quantity
		}
	}
	return out
}

type Dashboard struct {
	Orders  []models.Order
	Summary AdminSummary
}

type AdminService struct {
	reader OrderReader
	status StatusWriter
	events OrderEvents
	log    *zap.Logger
	now    func() time.Time
}

func NewAdminService(reader OrderReader, status StatusWriter, events OrderEvents, log *zap.Logger) *AdminService {
	return &AdminService{
		reader: reader,
		status: status,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// Dashboard re-fetches every order and aggregates from scratch.
func (s *AdminService) Dashboard(ctx context.Context, sort OrderSort) (*Dashboard, error) {
	orders, err := s.reader.ListWithItems(ctx, sort)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Orders: orders, Summary: Aggregate(orders)}, nil
}

// SetOrderStatus writes the new status directly. Concurrent updates of the
// same order are last-write-wins. Aggregates are not refreshed here.
func (s *AdminService) SetOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	found, err := s.status.UpdateStatus(ctx, id, status)
	if err != nil {
		s.log.Error("update order status failed", zap.String("order_id", id.String()), zap.Error(err))
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	s.log.Info("order status updated", zap.String("order_id", id.String()), zap.String("status", string(status)))

	if s.events != nil {
		if err := s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:   id,
			Status:    status,
			ChangedAt: s.now(),
		}); err != nil {
			s.log.Warn("publish status changed failed", zap.String("order_id", id.String()), zap.Error(err))
		}
	}
	return nil
}
