package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// CancelShipmentCommandHandler handles shipment cancellation.
// Only the distributor that created the shipment may cancel it, and only
// while the cargo has not been picked up. A cancelled shipment that had a
// courier assigned releases that courier.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	if !aggregate.DistributorID().IsEqual(cmd.DistributorID()) {
		return errs.NewOperationNotAllowedError("shipment does not belong to this distributor")
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
