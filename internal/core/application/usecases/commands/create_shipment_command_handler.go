package commands

import (
	"context"

	"dispatch/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. New shipments start in Created status with a fresh handover
// verification code and become visible to nearby couriers immediately.
type CreateShipmentCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory IntakeUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment registration command.
// The originating distributor must exist; the shipment is persisted in
// Created status or the whole operation is rolled back.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if _, err := uow.DistributorRepository().Get(ctx, cmd.DistributorID()); err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.DistributorID(),
		cmd.PickupLocation(), cmd.PickupAddress(),
		cmd.DeliveryLocation(), cmd.DeliveryAddress(),
		cmd.Measure(), cmd.RecipientPhone(), cmd.Description(),
		shipment.NewVerificationCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
