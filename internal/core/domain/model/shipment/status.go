package shipment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure shipments
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Assigned ──> PickedUp ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is registered by a
	// distributor. Shipments in this status are visible as offers and may
	// be claimed by a courier or cancelled.
	Created

	// Assigned indicates the shipment has been exclusively claimed by a
	// courier. It may still be cancelled by the distributor.
	Assigned

	// PickedUp indicates the assigned courier has collected the parcel.
	PickedUp

	// Delivered indicates the parcel reached its destination.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the distributor withdrew the shipment before
	// pickup. This is a terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to Assigned.
//
// The only valid source state is Created: assignment is the exclusive claim
// of a fresh shipment, and reassignment is not supported. Every other source
// state, including Assigned itself, is rejected.
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"shipment is not available for acceptance",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid source states are Created and Assigned; once the parcel is picked up
// the shipment can no longer be withdrawn.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Assigned {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"shipment cannot be cancelled in its current state",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// Advance validates a courier-driven progress transition and returns the new
// status.
//
// Exactly two pairs are legal:
//   - Assigned → PickedUp
//   - PickedUp → Delivered
//
// Every other (current, target) pair is rejected, including same-state and
// backward transitions.
func (s Status) Advance(target Status) (Status, error) {
	if s == Assigned && target == PickedUp {
		return PickedUp, nil
	}

	if s == PickedUp && target == Delivered {
		return Delivered, nil
	}

	return 0, errs.NewOperationNotAllowedErrorWithCause(
		"invalid status transition",
		fmt.Errorf("cannot advance from %s to %s", s.String(), target.String()),
	)
}

// ValidateCanHaveCourier validates the consistency between shipment status and
// courier assignment: a courier is recorded exactly when the status is
// Assigned, PickedUp, or Delivered.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	assignedStates := s == Assigned || s == PickedUp || s == Delivered

	if courier && !assignedStates {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && assignedStates {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}
