package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
)

// DeliverOrderCommandHandler settles a completed delivery. One
// transaction closes the assignment, the order and the courier's active
// slot and appends the earning record, unpaid. The wallet credit
// happens after commit and flips the record's paid flag; a crash or
// failure between commit and credit leaves the record unpaid, and the
// earning sync sweep re-credits it (the credit is idempotent per
// assignment).
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, wallet, notifier, clock, logger)
//	cmd, _ := NewDeliverOrderCommand(assignmentID, tip)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("settlement failed: %v", err)
//	}
type DeliverOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	wallet     ports.WalletService
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewDeliverOrderCommandHandler creates a handler for delivery settlement.
func NewDeliverOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	wallet ports.WalletService,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		wallet:     wallet,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle settles the delivery. The payout is the fee frozen on the
// assignment at offer time plus the tip.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.AssignmentRepository().Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	delivering, err := uow.CourierRepository().Get(ctx, record.CourierID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = record.Deliver(cmd.Tip(), now); err != nil {
		return err
	}
	if err = ord.Deliver(now); err != nil {
		return err
	}

	fee := record.Fee()
	payout := kernel.RoundMoney(fee.Total + cmd.Tip())
	if err = delivering.CompleteDelivery(payout); err != nil {
		return err
	}

	earning := courier.Earning{
		ID:            kernel.NewUUID(),
		CourierID:     delivering.ID(),
		OrderID:       ord.ID(),
		AssignmentID:  record.ID(),
		BaseFee:       fee.Base,
		DistanceBonus: fee.DistanceBonus,
		VehicleBonus:  fee.VehicleBonus,
		TimeBonus:     fee.TimeBonus,
		Tip:           cmd.Tip(),
		Total:         payout,
		EarnedAt:      now,
	}
	if err = uow.EarningRepository().Add(ctx, earning); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, delivering); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.creditWallet(ctx, earning)

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderDelivered)
	return nil
}

// creditWallet pays the committed earning into the courier's wallet and
// flags the ledger record once the credit lands. The credit is
// idempotent per assignment; any failure here leaves the record unpaid
// and the earning sync sweep picks it up.
func (h *DeliverOrderCommandHandler) creditWallet(ctx context.Context, earning courier.Earning) {
	if err := h.wallet.AddEarning(ctx, earning.CourierID, earning.Total, earning.AssignmentID.String()); err != nil {
		h.logger.Error("wallet credit failed",
			"courierID", earning.CourierID.String(),
			"assignmentID", earning.AssignmentID.String(),
			"error", err)
		return
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("earning paid flag not set", "earningID", earning.ID.String(), "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EarningRepository().MarkPaid(ctx, earning.ID, h.clock.Now()); err != nil {
		h.logger.Error("earning paid flag not set", "earningID", earning.ID.String(), "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		h.logger.Error("earning paid flag not set", "earningID", earning.ID.String(), "error", err)
	}
}
