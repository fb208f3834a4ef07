// Package kafka publishes order lifecycle events to a Kafka topic.
// Consumers (push notification service, SMS gateway) render the actual
// user-facing message from the event name and locale.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"kurye/internal/core/ports"

	segmentio "github.com/segmentio/kafka-go"
)

// DefaultTopic is the topic order events are published to.
const DefaultTopic = "order-events"

// messageWriter is the slice of kafka.Writer the notifier uses,
// extracted so tests can run without a broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...segmentio.Message) error
}

// Notifier implements the notification port on top of a Kafka writer.
type Notifier struct {
	writer messageWriter
}

// NewNotifier creates a notifier publishing to the given brokers and topic.
func NewNotifier(brokers []string, topic string) *Notifier {
	return &Notifier{
		writer: &segmentio.Writer{
			Addr:         segmentio.TCP(brokers...),
			Topic:        topic,
			Balancer:     &segmentio.Hash{},
			RequiredAcks: segmentio.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// NewNotifierWithWriter creates a notifier over an existing writer.
func NewNotifierWithWriter(writer messageWriter) *Notifier {
	return &Notifier{writer: writer}
}

// eventPayload is the wire shape of one order event.
type eventPayload struct {
	UserID   string    `json:"user_id"`
	OrderID  string    `json:"order_id"`
	Event    string    `json:"event"`
	Language string    `json:"language"`
	SentAt   time.Time `json:"sent_at"`
}

// Notify publishes one order event. The order ID keys the message so all
// events of an order land on the same partition, in order.
func (n *Notifier) Notify(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(eventPayload{
		UserID:   event.UserID.String(),
		OrderID:  event.OrderID.String(),
		Event:    event.Event,
		Language: event.Language,
		SentAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer when it owns one.
func (n *Notifier) Close() error {
	if writer, ok := n.writer.(*segmentio.Writer); ok {
		return writer.Close()
	}
	return nil
}
