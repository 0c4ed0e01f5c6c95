package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterDistributorCommandIsNotConstructed = errors.New(
	"RegisterDistributorCommand must be created via NewRegisterDistributorCommand constructor",
)

// RegisterDistributorCommand represents a new distributor signing up.
// Distributor accounts are not gated on document verification.
type RegisterDistributorCommand struct { //nolint:recvcheck //using for validation
	distributorID kernel.UUID
	name          string
	phone         string
	address       kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterDistributorCommand creates a command to register a distributor.
func NewRegisterDistributorCommand(
	distributorID kernel.UUID,
	name, phone string,
	address kernel.Address,
) (RegisterDistributorCommand, error) {
	cmd := RegisterDistributorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDistributorID(distributorID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterDistributorCommand{}, err
	}
	cmd.address = address

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDistributorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDistributorCommandIsNotConstructed)
}

// DistributorID returns the identifier the new distributor will be created with.
func (c RegisterDistributorCommand) DistributorID() kernel.UUID { return c.distributorID }

// Name returns the distributor's display name.
func (c RegisterDistributorCommand) Name() string { return c.name }

// Phone returns the distributor's contact phone number.
func (c RegisterDistributorCommand) Phone() string { return c.phone }

// Address returns the distributor's business address.
func (c RegisterDistributorCommand) Address() kernel.Address { return c.address }

func (c *RegisterDistributorCommand) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.distributorID = id
	return nil
}

func (c *RegisterDistributorCommand) setName(name string) error {
	if name == "" {
		return distributor.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterDistributorCommand) setPhone(phone string) error {
	if phone == "" {
		return distributor.ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
