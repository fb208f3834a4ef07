package ports

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
)

// WalletService credits courier earnings. The settlement ledger lives in
// another bounded context; this port is the only coupling to it.
type WalletService interface {
	// AddEarning credits amount to the courier's wallet. The call is
	// idempotent per referenceID: retrying a delivery settlement never
	// double-credits.
	AddEarning(ctx context.Context, courierID kernel.UUID, amount float64, referenceID string) error
}
