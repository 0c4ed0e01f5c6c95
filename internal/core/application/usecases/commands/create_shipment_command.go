package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrRecipientPhoneIsRequired = errs.NewValueIsRequiredError("recipientPhone")
)

// CreateShipmentCommand represents a distributor's request to register a new
// shipment. Encapsulates the route, the cargo measure, and recipient contact
// details.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(40.98, 29.02)
//	delivery, _ := kernel.NewLocation(41.04, 28.97)
//	measure, _ := shipment.NewMeasure(2.5, 30, 40, 20, shipment.SizeSmall)
//
//	cmd, err := NewCreateShipmentCommand(
//	    kernel.NewUUID(), distributorID,
//	    pickup, pickupAddress, delivery, deliveryAddress,
//	    measure, "+90 555 111 22 33", "two boxes")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	distributorID    kernel.UUID
	pickupLocation   kernel.Location
	pickupAddress    kernel.Address
	deliveryLocation kernel.Location
	deliveryAddress  kernel.Address
	measure          shipment.Measure
	recipientPhone   string
	description      string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Locations and the measure must already be valid value objects; the
// recipient phone is mandatory, the description may be empty.
func NewCreateShipmentCommand(
	shipmentID, distributorID kernel.UUID,
	pickupLocation kernel.Location, pickupAddress kernel.Address,
	deliveryLocation kernel.Location, deliveryAddress kernel.Address,
	measure shipment.Measure,
	recipientPhone, description string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDistributorID(distributorID),
		cmd.setPickup(pickupLocation, pickupAddress),
		cmd.setDelivery(deliveryLocation, deliveryAddress),
		cmd.setMeasure(measure),
		cmd.setRecipientPhone(recipientPhone),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will be created with.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// DistributorID returns the identifier of the requesting distributor.
func (c CreateShipmentCommand) DistributorID() kernel.UUID { return c.distributorID }

// PickupLocation returns the collection point coordinates.
func (c CreateShipmentCommand) PickupLocation() kernel.Location { return c.pickupLocation }

// PickupAddress returns the collection point postal address.
func (c CreateShipmentCommand) PickupAddress() kernel.Address { return c.pickupAddress }

// DeliveryLocation returns the drop-off point coordinates.
func (c CreateShipmentCommand) DeliveryLocation() kernel.Location { return c.deliveryLocation }

// DeliveryAddress returns the drop-off point postal address.
func (c CreateShipmentCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }

// Measure returns the cargo weight, dimensions, and size class.
func (c CreateShipmentCommand) Measure() shipment.Measure { return c.measure }

// RecipientPhone returns the recipient's contact phone number.
func (c CreateShipmentCommand) RecipientPhone() string { return c.recipientPhone }

// Description returns the free-form cargo description, possibly empty.
func (c CreateShipmentCommand) Description() string { return c.description }

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.distributorID = id
	return nil
}

func (c *CreateShipmentCommand) setPickup(location kernel.Location, address kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.pickupLocation = location
	c.pickupAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDelivery(location kernel.Location, address kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.deliveryLocation = location
	c.deliveryAddress = address
	return nil
}

func (c *CreateShipmentCommand) setMeasure(measure shipment.Measure) error {
	if err := measure.Validate(); err != nil {
		return err
	}
	c.measure = measure
	return nil
}

func (c *CreateShipmentCommand) setRecipientPhone(phone string) error {
	if phone == "" {
		return ErrRecipientPhoneIsRequired
	}
	c.recipientPhone = phone
	return nil
}
