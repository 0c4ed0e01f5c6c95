package distributor

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for distributor operations.
var (
	// ErrNameIsRequired is returned when attempting to create a distributor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a distributor without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDistributorIsNotConstructed is returned when using an improperly initialized Distributor.
	ErrDistributorIsNotConstructed = errors.New("Distributor must be created via NewDistributor constructor")
)

// Distributor represents a sender account that originates shipments.
type Distributor struct {
	id      kernel.UUID
	name    string
	phone   string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewDistributor creates a Distributor account.
func NewDistributor(id kernel.UUID, name, phone string, address kernel.Address) (*Distributor, error) {
	d := &Distributor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}
	d.address = address

	return d, nil
}

// RestoreDistributor reconstructs a Distributor aggregate from persistent storage.
func RestoreDistributor(id kernel.UUID, name, phone string, address kernel.Address) (*Distributor, error) {
	return NewDistributor(id, name, phone, address)
}

// Validate ensures the Distributor was properly constructed.
func (d *Distributor) Validate() error {
	if d == nil {
		return ErrDistributorIsNotConstructed
	}
	return d.guard.Validate(ErrDistributorIsNotConstructed)
}

// IsEqual compares two distributors by their unique identifiers.
func (d *Distributor) IsEqual(other *Distributor) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the distributor's unique identifier.
func (d *Distributor) ID() kernel.UUID { return d.id }

// Name returns the distributor's display name.
func (d *Distributor) Name() string { return d.name }

// Phone returns the distributor's contact phone number.
func (d *Distributor) Phone() string { return d.phone }

// Address returns the distributor's business address.
func (d *Distributor) Address() kernel.Address { return d.address }

func (d *Distributor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Distributor) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Distributor) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}
