package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type listerFunc func(ctx context.Context, before time.Time) ([]models.Order, error)

func (f listerFunc) ListWithoutItems(ctx context.Context, before time.Time) ([]models.Order, error) {
	return f(ctx, before)
}

func TestScanOnce_UsesGraceCutoffAndLogs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var gotCutoff time.Time
	orphan := models.Order{ID: uuid.New(), CustomerName: "Maria"}

	core, logs := observer.New(zap.InfoLevel)
	s := NewOrphanScanner(listerFunc(func(ctx context.Context, before time.Time) ([]models.Order, error) {
		gotCutoff = before
		return []models.Order{orphan}, nil
	}), 10*time.Minute, time.Hour, zap.New(core))
	s.now = func() time.Time { return now }

	got, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, now.Add(-10*time.Minute), gotCutoff)
	assert.Equal(t, 1, logs.FilterMessage("order without items").Len())
}

type itemsFunc func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)

func (f itemsFunc) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	return f(ctx, orderID)
}

func TestConfirm_DropsOrdersThatGainedItems(t *testing.T) {
	still := models.Order{ID: uuid.New()}
	healed := models.Order{ID: uuid.New()}

	got, err := Confirm(context.Background(), itemsFunc(func(ctx context.Context, id uuid.UUID) ([]models.OrderItem, error) {
		if id == healed.ID {
			return []models.OrderItem{{OrderID: id, Quantity: 1}}, nil
		}
		return nil, nil
	}), []models.Order{still, healed})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, still.ID, got[0].ID)
}

func TestConfirm_Error(t *testing.T) {
	_, err := Confirm(context.Background(), itemsFunc(func(ctx context.Context, id uuid.UUID) ([]models.OrderItem, error) {
		return nil, errors.New("db down")
	}), []models.Order{{ID: uuid.New()}})
	assert.Error(t, err)
}

func TestScanOnce_Error(t *testing.T) {
	s := NewOrphanScanner(listerFunc(func(ctx context.Context, before time.Time) ([]models.Order, error) {
		return nil, errors.New("db down")
	}), time.Minute, time.Hour, zap.NewNop())

	_, err := s.ScanOnce(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	calls := make(chan struct{}, 4)
	s := NewOrphanScanner(listerFunc(func(ctx context.Context, before time.Time) ([]models.Order, error) {
		calls <- struct{}{}
		return nil, nil
	}), time.Minute, time.Hour, zap.NewNop())

	s.Start(context.Background())
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan did not run")
	}
	s.Stop()
}
