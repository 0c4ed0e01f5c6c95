package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents a courier's request to claim an offered
// shipment. Acceptance is exclusive: when several couriers race for the same
// shipment, exactly one wins.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command for a courier to claim a shipment.
func NewAcceptOfferCommand(shipmentID, courierID kernel.UUID) (AcceptOfferCommand, error) {
	cmd := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being claimed.
func (c AcceptOfferCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CourierID returns the identifier of the claiming courier.
func (c AcceptOfferCommand) CourierID() kernel.UUID { return c.courierID }

func (c *AcceptOfferCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AcceptOfferCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
