package commands

import (
	"context"
	"errors"
	"log/slog"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
)

// conflictRetries is how many times a handler re-runs its transaction
// after losing an optimistic concurrency race.
const conflictRetries = 3

// defaultLanguage selects the notification locale until per-user
// preferences are stored.
const defaultLanguage = "tr"

// withConflictRetry runs fn up to conflictRetries times, retrying only
// on ports.ErrConcurrencyConflict. Each attempt must open a fresh
// transaction so it re-reads current aggregate versions.
func withConflictRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = fn()
		if !errors.Is(err, ports.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}

// notifyOrderEvent publishes an order lifecycle event after the state
// change is committed. Publish failures are logged, never propagated:
// the state change already happened.
func notifyOrderEvent(
	ctx context.Context,
	notifier ports.Notifier,
	logger *slog.Logger,
	userID, orderID kernel.UUID,
	event string,
) {
	err := notifier.Notify(ctx, ports.OrderEvent{
		UserID:   userID,
		OrderID:  orderID,
		Event:    event,
		Language: defaultLanguage,
	})
	if err != nil {
		logger.Warn("order event publish failed",
			"event", event,
			"orderID", orderID.String(),
			"error", err)
	}
}
