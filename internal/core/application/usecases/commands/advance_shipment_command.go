package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand represents a courier's report of delivery progress:
// either the cargo was picked up or it was handed over to the recipient.
type AdvanceShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	courierID  kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentCommand creates a command to advance a shipment.
// Only PickedUp and Delivered are valid targets; the lifecycle itself
// decides whether the step is legal from the current status.
func NewAdvanceShipmentCommand(shipmentID, courierID kernel.UUID, target shipment.Status) (AdvanceShipmentCommand, error) {
	cmd := AdvanceShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCourierID(courierID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being advanced.
func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CourierID returns the identifier of the reporting courier.
func (c AdvanceShipmentCommand) CourierID() kernel.UUID { return c.courierID }

// Target returns the status the shipment should move to.
func (c AdvanceShipmentCommand) Target() shipment.Status { return c.target }

func (c *AdvanceShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AdvanceShipmentCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *AdvanceShipmentCommand) setTarget(target shipment.Status) error {
	if target != shipment.PickedUp && target != shipment.Delivered {
		return errs.NewValueIsInvalidErrorWithCause("target status is invalid",
			fmt.Errorf("%s is not a progress step", target))
	}
	c.target = target
	return nil
}
