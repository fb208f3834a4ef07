package commands

import (
	"context"
)

// SetVendorBusyCommandHandler applies busy-level updates to a vendor.
type SetVendorBusyCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewSetVendorBusyCommandHandler creates a handler for vendor busy updates.
func NewSetVendorBusyCommandHandler(uowFactory OrderingUoWFactory) SetVendorBusyCommandHandler {
	return SetVendorBusyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the busy-level update.
func (h *SetVendorBusyCommandHandler) Handle(ctx context.Context, cmd SetVendorBusyCommand) error {
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

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = v.SetBusyStatus(cmd.BusyStatus()); err != nil {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
