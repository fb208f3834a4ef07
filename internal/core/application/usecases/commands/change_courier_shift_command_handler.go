package commands

import (
	"context"
)

// ChangeCourierShiftCommandHandler applies shift changes. The aggregate
// refuses changes that would strand deliveries, like going offline with
// an active order.
type ChangeCourierShiftCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewChangeCourierShiftCommandHandler creates a handler for shift changes.
func NewChangeCourierShiftCommandHandler(uowFactory CourierUoWFactory) ChangeCourierShiftCommandHandler {
	return ChangeCourierShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift change.
func (h *ChangeCourierShiftCommandHandler) Handle(ctx context.Context, cmd ChangeCourierShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.handleOnce(ctx, cmd)
	})
}

func (h *ChangeCourierShiftCommandHandler) handleOnce(ctx context.Context, cmd ChangeCourierShiftCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shifting, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	switch cmd.Action() {
	case ShiftGoOnline:
		err = shifting.GoOnline()
	case ShiftGoOffline:
		err = shifting.GoOffline()
	case ShiftTakeBreak:
		err = shifting.TakeBreak()
	default:
		err = ErrShiftActionIsInvalid
	}
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, shifting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
