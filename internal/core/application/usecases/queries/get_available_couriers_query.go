package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
	"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
)

// GetAvailableCouriersQuery retrieves enabled couriers in Active status with
// a known position. Served to other internal systems over the API-key
// guarded endpoint; the caller may restrict the listing to a radius around
// a point.
type GetAvailableCouriersQuery struct { //nolint:recvcheck //using for validation
	near     *kernel.Location
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery creates a query for the full active fleet.
func NewGetAvailableCouriersQuery() GetAvailableCouriersQuery {
	return GetAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAvailableCouriersNearQuery creates a query for active couriers
// within radiusKm of the given point.
func NewGetAvailableCouriersNearQuery(location kernel.Location, radiusKm float64) (GetAvailableCouriersQuery, error) {
	q := GetAvailableCouriersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setNear(location, radiusKm); err != nil {
		return GetAvailableCouriersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

// Near returns the center of the proximity filter, or nil for the full fleet.
func (q GetAvailableCouriersQuery) Near() *kernel.Location { return q.near }

// RadiusKm returns the proximity filter radius. Meaningful only when Near
// is set.
func (q GetAvailableCouriersQuery) RadiusKm() float64 { return q.radiusKm }

func (q *GetAvailableCouriersQuery) setNear(location kernel.Location, radiusKm float64) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidError("radiusKm")
	}
	q.near = &location
	q.radiusKm = radiusKm
	return nil
}

// GetAvailableCouriersQueryResponse is one courier in the fleet read model.
type GetAvailableCouriersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Transport courier.Transport
	Location  kernel.Location
}
