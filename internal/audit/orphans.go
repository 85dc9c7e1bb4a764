package audit

import (
	"context"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrphanLister interface {
	ListWithoutItems(ctx context.Context, createdBefore time.Time) ([]models.Order, error)
}

type ItemLister interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
}

// Confirm re-reads the items of each candidate and keeps the orders that
// still have none. Items written after the scan drop the order from the report.
func Confirm(ctx context.Context, items ItemLister, candidates []models.Order) ([]models.Order, error) {
	out := make([]models.Order, 0, len(candidates))
	for _, o := range candidates {
		rows, err := items.GetByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			out = append(out, o)
		}
	}
	return out, nil
}

// OrphanScanner reports orders whose items were never written. It only logs;
// the rows are left for the administrator to resolve.
type OrphanScanner struct {
	orders   OrphanLister
	grace    time.Duration
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
	stopCh   chan struct{}
}

func NewOrphanScanner(orders OrphanLister, grace, interval time.Duration, log *zap.Logger) *OrphanScanner {
	return &OrphanScanner{
		orders:   orders,
		grace:    grace,
		interval: interval,
		log:      log,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// ScanOnce lists orders older than the grace period that have no items.
func (s *OrphanScanner) ScanOnce(ctx context.Context) ([]models.Order, error) {
	orphans, err := s.orders.ListWithoutItems(ctx, s.now().Add(-s.grace))
	if err != nil {
		return nil, err
	}
	for _, o := range orphans {
		s.log.Warn("order without items",
			zap.String("order_id", o.ID.String()),
			zap.String("customer", o.CustomerName),
			zap.String("total", o.TotalAmount.StringFixed(2)),
			zap.Time("created_at", o.CreatedAt),
		)
	}
	if len(orphans) > 0 {
		s.log.Info("orphan scan finished", zap.Int("count", len(orphans)))
	}
	return orphans, nil
}

// Start runs a scan immediately and then on every tick until Stop or ctx is done.
func (s *OrphanScanner) Start(ctx context.Context) {
	s.log.Info("starting orphan order scanner", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *OrphanScanner) Stop() {
	s.log.Info("stopping orphan order scanner")
	close(s.stopCh)
}

func (s *OrphanScanner) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if _, err := s.ScanOnce(ctx); err != nil {
		s.log.Error("initial orphan scan failed", zap.Error(err))
	}

	for {
		select {
		case <-ticker.C:
			if _, err := s.ScanOnce(ctx); err != nil {
				s.log.Error("orphan scan failed", zap.Error(err))
			}
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}
