package document

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Kind is the category of an uploaded verification document.
type Kind int

const (
	// KindUnknown represents an invalid or undefined document kind.
	KindUnknown Kind = iota
	// KindDriversLicense is the courier's driving license.
	KindDriversLicense
	// KindVehicleRegistration is the registration certificate of the vehicle.
	KindVehicleRegistration
	// KindIdentity is a government-issued identity document.
	KindIdentity
	// KindCriminalRecord is the criminal record extract.
	KindCriminalRecord
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:             "Unknown",
		KindDriversLicense:      "DriversLicense",
		KindVehicleRegistration: "VehicleRegistration",
		KindIdentity:            "Identity",
		KindCriminalRecord:      "CriminalRecord",
	}
}

// Validate checks if the Kind is one of the defined document categories.
func (k Kind) Validate() error {
	switch k {
	case KindDriversLicense, KindVehicleRegistration, KindIdentity, KindCriminalRecord:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("document kind is invalid",
			fmt.Errorf("%d is not a valid document kind", k))
	}
}

// String returns the human-readable name of the document kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
