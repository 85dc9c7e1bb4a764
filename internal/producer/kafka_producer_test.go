package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishOrderPlaced(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaOrderEvents{writer: w}
	id := uuid.New()

	err := p.PublishOrderPlaced(context.Background(), service.OrderPlacedEvent{
		OrderID:       id,
		CustomerName:  "Maria",
		TotalAmount:   decimal.RequireFromString("106.50"),
		TotalQuantity: 6,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, id.String(), string(w.msgs[0].Key))

	var got struct {
		Type    string `json:"type"`
		Payload struct {
			OrderID     string `json:"order_id"`
			TotalAmount string `json:"total_amount"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, eventOrderPlaced, got.Type)
	assert.Equal(t, id.String(), got.Payload.OrderID)
	assert.Equal(t, "106.5", got.Payload.TotalAmount)
}

func TestPublishOrderStatusChanged_Error(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := &KafkaOrderEvents{writer: w}

	err := p.PublishOrderStatusChanged(context.Background(), service.OrderStatusChangedEvent{
		OrderID: uuid.New(),
		Status:  models.OrderStatusApproved,
	})
	assert.Error(t, err)
}
