package commands

import (
	"context"
)

// AdvanceShipmentCommandHandler handles delivery progress reports.
// Pickup and handover each stamp their timestamp on the shipment; the
// lifecycle rejects skipped steps and reports from couriers the shipment
// does not belong to.
type AdvanceShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAdvanceShipmentCommandHandler creates a handler for delivery progress reports.
func NewAdvanceShipmentCommandHandler(uowFactory ShipmentUoWFactory) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress report.
func (h *AdvanceShipmentCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.CourierID(), cmd.Target()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
