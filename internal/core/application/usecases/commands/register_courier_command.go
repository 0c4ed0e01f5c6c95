package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a new courier signing up. The account
// starts Offline and disabled; it is enabled once every uploaded document
// passes verification.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	phone     string
	transport courier.Transport

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
func NewRegisterCourierCommand(
	courierID kernel.UUID,
	name, phone string,
	transport courier.Transport,
) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setTransport(transport),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier the new courier will be created with.
func (c RegisterCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string { return c.name }

// Phone returns the courier's contact phone number.
func (c RegisterCourierCommand) Phone() string { return c.phone }

// Transport returns the courier's vehicle type.
func (c RegisterCourierCommand) Transport() courier.Transport { return c.transport }

func (c *RegisterCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return courier.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return courier.ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *RegisterCourierCommand) setTransport(transport courier.Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}
