package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand represents a courier reporting their working
// state together with their current position. Any state can be set from any
// state; the position always overwrites the previous one.
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.Status
	location  kernel.Location

	guard guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates a command to update a courier's availability.
func NewSetCourierAvailabilityCommand(
	courierID kernel.UUID,
	status courier.Status,
	location kernel.Location,
) (SetCourierAvailabilityCommand, error) {
	cmd := SetCourierAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setStatus(status),
		cmd.setLocation(location),
	); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

// CourierID returns the identifier of the reporting courier.
func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID { return c.courierID }

// Status returns the availability being reported.
func (c SetCourierAvailabilityCommand) Status() courier.Status { return c.status }

// Location returns the courier's current position.
func (c SetCourierAvailabilityCommand) Location() kernel.Location { return c.location }

func (c *SetCourierAvailabilityCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *SetCourierAvailabilityCommand) setStatus(status courier.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetCourierAvailabilityCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
