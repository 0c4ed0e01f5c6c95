// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOffersQueryIsNotConstructed = errors.New(
	"GetOffersQuery must be created via NewGetOffersQuery constructor",
)

// OfferRadiusKm is how far from the courier a shipment's pickup point may be
// for the shipment to be offered.
const OfferRadiusKm = 10.0

// GetOffersQuery retrieves the open shipments a courier can take right now,
// priced for the courier's current position.
//
// Example:
//
//	query, _ := NewGetOffersQuery(courierID)
//	offers, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrUserNotActive) {
//	    // courier has not passed document verification yet
//	}
type GetOffersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOffersQuery creates a query for a courier's current offers.
func NewGetOffersQuery(courierID kernel.UUID) (GetOffersQuery, error) {
	q := GetOffersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCourierID(courierID); err != nil {
		return GetOffersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOffersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier asking for offers.
func (q GetOffersQuery) CourierID() kernel.UUID { return q.courierID }

func (q *GetOffersQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.courierID = id
	return nil
}

// GetOffersQueryResponse is one priced offer in the read model.
type GetOffersQueryResponse struct {
	ShipmentID       kernel.UUID
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	Description      string
	DistanceToPickup float64
	TotalDistance    float64
	EstimatedEarning float64
}
