package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LocationMinLatitude is the minimum valid latitude in WGS84 degrees.
	LocationMinLatitude float64 = -90
	// LocationMaxLatitude is the maximum valid latitude in WGS84 degrees.
	LocationMaxLatitude float64 = 90
	// LocationMinLongitude is the minimum valid longitude in WGS84 degrees.
	LocationMinLongitude float64 = -180
	// LocationMaxLongitude is the maximum valid longitude in WGS84 degrees.
	LocationMaxLongitude float64 = 180

	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	EarthRadiusKm float64 = 6371
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via the NewLocation constructor")

// Location represents a geographic point in WGS84 degrees.
// Location is an immutable value object that guarantees its coordinates are
// always within valid bounds. The zero value of Location is invalid and fails
// validation; use NewLocation to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(40.05, 29.05)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Location(40.050000,29.050000)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// an out-of-range coordinate yields a validation error. NaN is rejected.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value of Location is invalid and fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in WGS84 degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in WGS84 degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String returns a human-readable representation of the Location.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two locations for equality.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceTo calculates the great-circle distance to another location in
// kilometers using the Haversine formula. The distance is symmetric and zero
// for identical points. Both locations must be properly constructed.
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return DistanceKm(l.latitude, l.longitude, other.latitude, other.longitude), nil
}

// DistanceKm computes the great-circle distance between two WGS84 points in
// kilometers using the Haversine formula with Earth radius 6371 km.
// It is a pure function: symmetric in its arguments and zero for identical
// points. Callers must validate coordinate ranges themselves.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// setLatitude sets the latitude with validation.
// Note: private setters use pointer receivers to enable self-encapsulated
// validation during object construction.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LocationMinLatitude || latitude > LocationMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LocationMinLatitude, LocationMaxLatitude)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LocationMinLongitude || longitude > LocationMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LocationMinLongitude, LocationMaxLongitude)
	}

	l.longitude = longitude
	return nil
}
