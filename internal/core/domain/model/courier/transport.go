package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Transport is the vehicle type a courier operates with.
type Transport int

const (
	// TransportUnknown represents an invalid or undefined vehicle type.
	TransportUnknown Transport = iota
	// TransportMotorbike is a two-wheeler, suitable for small parcels.
	TransportMotorbike
	// TransportCar is a passenger car.
	TransportCar
	// TransportVan is a light commercial vehicle for large parcels.
	TransportVan
)

func getTransportStrings() map[Transport]string {
	return map[Transport]string{
		TransportUnknown:   "Unknown",
		TransportMotorbike: "Motorbike",
		TransportCar:       "Car",
		TransportVan:       "Van",
	}
}

// Validate checks if the Transport is one of the defined vehicle types.
func (t Transport) Validate() error {
	switch t {
	case TransportMotorbike, TransportCar, TransportVan:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transport is invalid",
			fmt.Errorf("%d is not a valid transport", t))
	}
}

// String returns the human-readable name of the vehicle type.
func (t Transport) String() string {
	if str, ok := getTransportStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
