package commands

import (
	"context"
)

// AddDeliveryNoteCommandHandler attaches delivery notes to shipments.
// The note is stored in the shipment's description field, overwriting the
// distributor's cargo description.
type AddDeliveryNoteCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddDeliveryNoteCommandHandler creates a handler for delivery notes.
func NewAddDeliveryNoteCommandHandler(uowFactory ShipmentUoWFactory) AddDeliveryNoteCommandHandler {
	return AddDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery note command.
func (h *AddDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd AddDeliveryNoteCommand) error {
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

	aggregate, err := uow.ShipmentRepository().GetByVerificationCode(ctx, cmd.VerificationCode())
	if err != nil {
		return err
	}

	aggregate.SetDeliveryNote(cmd.Note())

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
