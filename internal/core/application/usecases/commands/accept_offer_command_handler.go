package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// AcceptOfferCommandHandler handles the business logic for claiming an
// offered shipment.
//
// The claim is atomic: the shipment moves from Created to Assigned in a
// single conditional update inside the transaction, so of any number of
// couriers accepting concurrently exactly one succeeds and the rest are
// told the shipment is no longer available.
type AcceptOfferCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(uowFactory DispatchUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer acceptance command.
// The courier must have passed document verification; a disabled account is
// rejected before the shipment is even looked at.
func (h *AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !courier.Enabled() {
		return errs.NewUserNotActiveError(cmd.CourierID())
	}

	if _, err = uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	claimed, err := uow.ShipmentRepository().TryAssign(ctx, cmd.ShipmentID(), cmd.CourierID())
	if err != nil {
		return err
	}
	if !claimed {
		return errs.NewOperationNotAllowedError("shipment is not available for acceptance")
	}

	return uow.Commit(ctx)
}
