package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a distributor's request to cancel one of
// their shipments before it was picked up.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(shipmentID, distributorID kernel.UUID) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDistributorID(distributorID),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// DistributorID returns the identifier of the requesting distributor.
func (c CancelShipmentCommand) DistributorID() kernel.UUID { return c.distributorID }

func (c *CancelShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CancelShipmentCommand) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.distributorID = id
	return nil
}
