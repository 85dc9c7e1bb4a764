package producer

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/service"

	"github.com/segmentio/kafka-go"
)

const (
	eventOrderPlaced        = "order.placed"
	eventOrderStatusChanged = "order.status_changed"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaOrderEvents publishes order lifecycle events keyed by order id.
type KafkaOrderEvents struct {
	writer messageWriter
}

func NewKafkaOrderEvents(brokers []string, topic string) *KafkaOrderEvents {
	return &KafkaOrderEvents{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (p *KafkaOrderEvents) PublishOrderPlaced(ctx context.Context, e service.OrderPlacedEvent) error {
	return p.publish(ctx, e.OrderID.String(), envelope{Type: eventOrderPlaced, Payload: e})
}

func (p *KafkaOrderEvents) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.OrderID.String(), envelope{Type: eventOrderStatusChanged, Payload: e})
}

func (p *KafkaOrderEvents) publish(ctx context.Context, key string, env envelope) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(env.Type)},
		},
	})
}

func (p *KafkaOrderEvents) Close() error {
	return p.writer.Close()
}
