package courier

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages the courier's operational availability,
// last known position, and account activation state.
//
// Business rules:
//   - A courier registers Offline, disabled, with no recorded location.
//   - Availability updates overwrite status and location unconditionally;
//     there are no transition restrictions and the position is kept as a
//     single current value, never historized.
//   - The enabled flag is granted by the document verification workflow and
//     is never revoked once set.
type Courier struct {
	id        kernel.UUID
	name      string
	phone     string
	transport Transport
	status    Status
	enabled   bool

	// location is the last reported position; nil until the first
	// availability update.
	location          *kernel.Location
	locationUpdatedAt *time.Time

	guard guard.ConstructorGuard
}

// NewCourier creates a freshly registered Courier: Offline, disabled, and
// without a location. Activation is granted later by document approval.
func NewCourier(id kernel.UUID, name, phone string, transport Transport) (*Courier, error) {
	c := &Courier{
		status: StatusOffline,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setTransport(transport),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability, activation, and last reported position.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	transport Transport,
	status Status,
	enabled bool,
	location *kernel.Location,
	locationUpdatedAt *time.Time,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setTransport(transport),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	c.status = status
	c.enabled = enabled

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		c.location = &loc
		if locationUpdatedAt != nil {
			ts := *locationUpdatedAt
			c.locationUpdatedAt = &ts
		}
	}

	return c, nil
}

// Validate ensures the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's contact phone number.
func (c *Courier) Phone() string { return c.phone }

// Transport returns the courier's vehicle type.
func (c *Courier) Transport() Transport { return c.transport }

// Status returns the courier's current availability.
func (c *Courier) Status() Status { return c.status }

// Enabled reports whether the account passed the document activation gate.
func (c *Courier) Enabled() bool { return c.enabled }

// Location returns the last reported position, or nil if the courier has
// never reported one.
func (c *Courier) Location() *kernel.Location { return c.location }

// LocationUpdatedAt returns when the position was last reported, or nil.
func (c *Courier) LocationUpdatedAt() *time.Time { return c.locationUpdatedAt }

// SetAvailability overwrites the courier's status and position.
// Any status is reachable from any status; the location record is created on
// the first update and overwritten in place afterwards.
func (c *Courier) SetAvailability(status Status, location kernel.Location) error {
	if err := errors.Join(status.Validate(), location.Validate()); err != nil {
		return err
	}

	now := time.Now().UTC()
	c.status = status
	c.location = &location
	c.locationUpdatedAt = &now
	return nil
}

// Enable marks the account as activated. Called by the document verification
// workflow once every document is approved. Enabling is idempotent and there
// is deliberately no counterpart that disables an account.
func (c *Courier) Enable() {
	c.enabled = true
}

// CanSeeOffers reports whether offer computation applies to this courier:
// the availability must accept offers and a position must be known.
// Activation is checked separately so the caller can distinguish an empty
// offer list from a gated account.
func (c *Courier) CanSeeOffers() bool {
	return c.status.AcceptsOffers() && c.location != nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}
