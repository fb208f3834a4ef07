package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/ports"
)

// SyncEarningsCommandHandler reconciles the earning ledger with courier
// wallets. Settlement credits the wallet after its transaction commits;
// when that credit fails, the record stays unpaid and this sweep
// retries it. The credit is idempotent per assignment, so re-crediting
// a record whose first attempt actually landed is harmless.
type SyncEarningsCommandHandler struct {
	uowFactory SettlementUoWFactory
	wallet     ports.WalletService
	clock      ports.Clock
	logger     *slog.Logger
}

// NewSyncEarningsCommandHandler creates a handler for earning sync sweeps.
func NewSyncEarningsCommandHandler(
	uowFactory SettlementUoWFactory,
	wallet ports.WalletService,
	clock ports.Clock,
	logger *slog.Logger,
) SyncEarningsCommandHandler {
	return SyncEarningsCommandHandler{
		uowFactory: uowFactory,
		wallet:     wallet,
		clock:      clock,
		logger:     logger,
	}
}

// Handle runs one sweep. A record whose credit fails again is logged
// and left for the next sweep; one bad record never blocks the rest.
func (h *SyncEarningsCommandHandler) Handle(ctx context.Context, cmd SyncEarningsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unpaid, err := h.readUnpaid(ctx)
	if err != nil {
		return err
	}

	for _, earning := range unpaid {
		if err := h.wallet.AddEarning(ctx, earning.CourierID, earning.Total, earning.AssignmentID.String()); err != nil {
			h.logger.Warn("earning sync credit failed",
				"earningID", earning.ID.String(),
				"courierID", earning.CourierID.String(),
				"error", err)
			continue
		}

		if err := h.markPaid(ctx, earning); err != nil {
			h.logger.Warn("earning sync paid flag not set",
				"earningID", earning.ID.String(),
				"error", err)
		}
	}

	return nil
}

func (h *SyncEarningsCommandHandler) readUnpaid(ctx context.Context) ([]courier.Earning, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.EarningRepository().GetAllUnpaid(ctx)
}

func (h *SyncEarningsCommandHandler) markPaid(ctx context.Context, earning courier.Earning) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EarningRepository().MarkPaid(ctx, earning.ID, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
