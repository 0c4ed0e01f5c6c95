package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when using an improperly
	// initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrPhoneIsRequired is returned when creating a shipment without a
	// contact phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVerificationCodeIsRequired is returned when creating a shipment
	// without a tracking code.
	ErrVerificationCodeIsRequired = errs.NewValueIsRequiredError("verification code")
)

// verificationCodeLength is the length of the public tracking code.
const verificationCodeLength = 8

// NewVerificationCode generates the public tracking token for a shipment:
// an 8-character uppercase hex string. The code doubles as the key for
// unauthenticated tracking, delivery notes, and reviews.
func NewVerificationCode() string {
	return strings.ToUpper(uuid.NewString()[:verificationCodeLength])
}

// Shipment represents a single parcel movement request from pickup to
// delivery. It is the aggregate root that manages the shipment lifecycle from
// creation through exclusive courier assignment to delivery or cancellation.
//
// Invariants:
//   - A courier is recorded exactly when status is Assigned, PickedUp, or
//     Delivered.
//   - A shipment is claimed by at most one courier; reassignment is not
//     supported.
//   - pickupTime is stamped on the PickedUp transition, deliveryTime on the
//     Delivered transition.
//   - The description field doubles as the latest delivery note.
type Shipment struct {
	id            kernel.UUID
	distributorID kernel.UUID

	// courierID is the exclusively assigned courier (nil until accepted)
	courierID *kernel.UUID

	pickupLocation   kernel.Location
	pickupAddress    kernel.Address
	deliveryLocation kernel.Location
	deliveryAddress  kernel.Address

	measure Measure
	status  Status

	phone            string
	description      string
	verificationCode string

	pickupTime   *time.Time
	deliveryTime *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment in Created status.
// The shipment owns its two locations and its measure; they are created
// together and never shared with other shipments.
func NewShipment(
	id kernel.UUID,
	distributorID kernel.UUID,
	pickupLocation kernel.Location,
	pickupAddress kernel.Address,
	deliveryLocation kernel.Location,
	deliveryAddress kernel.Address,
	measure Measure,
	phone string,
	description string,
	verificationCode string,
) (*Shipment, error) {
	now := time.Now().UTC()
	s := &Shipment{
		status:    Created,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDistributorID(distributorID),
		s.setPickup(pickupLocation, pickupAddress),
		s.setDelivery(deliveryLocation, deliveryAddress),
		s.setMeasure(measure),
		s.setPhone(phone),
		s.setVerificationCode(verificationCode),
	); err != nil {
		return nil, err
	}

	s.description = description
	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// Unlike NewShipment, it accepts any lifecycle state and the courier
// assignment, and verifies the courier/status invariant before returning.
func RestoreShipment(
	id kernel.UUID,
	distributorID kernel.UUID,
	courierID *kernel.UUID,
	pickupLocation kernel.Location,
	pickupAddress kernel.Address,
	deliveryLocation kernel.Location,
	deliveryAddress kernel.Address,
	measure Measure,
	status Status,
	phone string,
	description string,
	verificationCode string,
	pickupTime *time.Time,
	deliveryTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDistributorID(distributorID),
		s.setPickup(pickupLocation, pickupAddress),
		s.setDelivery(deliveryLocation, deliveryAddress),
		s.setMeasure(measure),
		s.setPhone(phone),
		s.setVerificationCode(verificationCode),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		s.courierID = &cID
	}

	if err := s.status.ValidateCanHaveCourier(s.courierID != nil); err != nil {
		return nil, err
	}

	s.description = description
	s.pickupTime = pickupTime
	s.deliveryTime = deliveryTime
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// DistributorID returns the identifier of the owning distributor.
func (s *Shipment) DistributorID() kernel.UUID { return s.distributorID }

// Courier returns the assigned courier's ID, or nil if unassigned.
func (s *Shipment) Courier() *kernel.UUID { return s.courierID }

// PickupLocation returns the pickup coordinates.
func (s *Shipment) PickupLocation() kernel.Location { return s.pickupLocation }

// PickupAddress returns the free-text pickup address.
func (s *Shipment) PickupAddress() kernel.Address { return s.pickupAddress }

// DeliveryLocation returns the delivery coordinates.
func (s *Shipment) DeliveryLocation() kernel.Location { return s.deliveryLocation }

// DeliveryAddress returns the free-text delivery address.
func (s *Shipment) DeliveryAddress() kernel.Address { return s.deliveryAddress }

// Measure returns the physical characteristics of the parcel.
func (s *Shipment) Measure() Measure { return s.measure }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// Phone returns the contact phone number for the shipment.
func (s *Shipment) Phone() string { return s.phone }

// Description returns the free-text description. After delivery-note writes
// this holds the latest note; the field is deliberately dual purpose.
func (s *Shipment) Description() string { return s.description }

// VerificationCode returns the public tracking code.
func (s *Shipment) VerificationCode() string { return s.verificationCode }

// PickupTime returns when the parcel was picked up, or nil.
func (s *Shipment) PickupTime() *time.Time { return s.pickupTime }

// DeliveryTime returns when the parcel was delivered, or nil.
func (s *Shipment) DeliveryTime() *time.Time { return s.deliveryTime }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// Assign exclusively claims the shipment for a courier and moves it to
// Assigned. Only a Created shipment can be claimed; any other state yields
// OperationNotAllowed. This in-memory check mirrors the compare-and-swap the
// repository performs against the store, which is the authoritative arbiter
// under concurrency.
func (s *Shipment) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Assign()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.courierID = &courierID
	s.touch()
	return nil
}

// Advance applies a courier-driven progress transition: Assigned → PickedUp
// or PickedUp → Delivered. The calling courier must be the one assigned to
// the shipment. The matching timestamp is stamped on success.
func (s *Shipment) Advance(courierID kernel.UUID, target Status) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if s.courierID == nil || !s.courierID.IsEqual(courierID) {
		return errs.NewOperationNotAllowedError("shipment does not belong to this courier")
	}

	newStatus, err := s.status.Advance(target)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	s.status = newStatus
	switch newStatus {
	case PickedUp:
		s.pickupTime = &now
	case Delivered:
		s.deliveryTime = &now
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid advance target", newStatus.String()))
	}
	s.touch()
	return nil
}

// Cancel withdraws the shipment. Legal only from Created or Assigned.
// Cancelling an Assigned shipment releases the courier so the
// courier/status invariant keeps holding in the terminal state.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.courierID = nil
	s.touch()
	return nil
}

// SetDeliveryNote overwrites the description with the latest delivery note.
// The description field is the de facto note storage.
func (s *Shipment) SetDeliveryNote(note string) {
	s.description = note
	s.touch()
}

func (s *Shipment) touch() {
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("distributor", err)
	}
	s.distributorID = id
	return nil
}

func (s *Shipment) setPickup(location kernel.Location, address kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.pickupLocation = location
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDelivery(location kernel.Location, address kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.deliveryLocation = location
	s.deliveryAddress = address
	return nil
}

func (s *Shipment) setMeasure(measure Measure) error {
	if err := measure.Validate(); err != nil {
		return err
	}
	s.measure = measure
	return nil
}

func (s *Shipment) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	s.phone = phone
	return nil
}

func (s *Shipment) setVerificationCode(code string) error {
	if code == "" {
		return ErrVerificationCodeIsRequired
	}
	s.verificationCode = code
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
