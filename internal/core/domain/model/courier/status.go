package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the operational availability of a courier.
//
// Unlike the shipment lifecycle there are no transition restrictions: a
// courier may switch from any status to any other at will. The status only
// controls offer visibility: shipment offers are computed for Active and
// DestinationBased couriers.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOffline means the courier is not working. This is the initial
	// status at registration.
	StatusOffline

	// StatusInactive means the courier is on shift but not taking offers.
	StatusInactive

	// StatusActive means the courier is accepting work anywhere nearby.
	StatusActive

	// StatusDestinationBased means the courier only wants work along a
	// planned route; for offer visibility it behaves like Active.
	StatusDestinationBased
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "Unknown",
		StatusOffline:          "Offline",
		StatusInactive:         "Inactive",
		StatusActive:           "Active",
		StatusDestinationBased: "DestinationBased",
	}
}

// Validate checks if the Status is one of the defined availability states.
func (s Status) Validate() error {
	switch s {
	case StatusOffline, StatusInactive, StatusActive, StatusDestinationBased:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid courier status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AcceptsOffers reports whether couriers in this status see shipment offers.
func (s Status) AcceptsOffers() bool {
	return s == StatusActive || s == StatusDestinationBased
}
