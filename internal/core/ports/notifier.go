package ports

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
)

// Order event names published to notification consumers.
const (
	EventOrderAssigned       = "order.assigned"
	EventOrderAccepted       = "order.accepted"
	EventOrderRejected       = "order.rejected"
	EventOrderPickedUp       = "order.picked_up"
	EventOrderOutForDelivery = "order.out_for_delivery"
	EventOrderDelivered      = "order.delivered"
	EventOrderCancelled      = "order.cancelled"
)

// OrderEvent is a notification about an order lifecycle change,
// addressed to one user. Language selects the recipient's locale;
// the consumer renders the actual message text.
type OrderEvent struct {
	UserID   kernel.UUID
	OrderID  kernel.UUID
	Event    string
	Language string
}

// Notifier publishes order events to interested consumers. Publishing is
// fire-and-forget: a failed publish is logged by the caller and never
// rolls back the state change it announces.
type Notifier interface {
	Notify(ctx context.Context, event OrderEvent) error
}
