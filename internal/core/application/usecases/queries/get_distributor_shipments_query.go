package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/guard"
)

var ErrGetDistributorShipmentsQueryIsNotConstructed = errors.New(
	"GetDistributorShipmentsQuery must be created via NewGetDistributorShipmentsQuery constructor",
)

// GetDistributorShipmentsQuery lists every shipment a distributor created,
// newest first.
type GetDistributorShipmentsQuery struct { //nolint:recvcheck //using for validation
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDistributorShipmentsQuery creates a shipment listing query.
func NewGetDistributorShipmentsQuery(distributorID kernel.UUID) (GetDistributorShipmentsQuery, error) {
	q := GetDistributorShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDistributorID(distributorID); err != nil {
		return GetDistributorShipmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDistributorShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributorShipmentsQueryIsNotConstructed)
}

// DistributorID returns the identifier of the distributor.
func (q GetDistributorShipmentsQuery) DistributorID() kernel.UUID { return q.distributorID }

func (q *GetDistributorShipmentsQuery) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.distributorID = id
	return nil
}

// GetDistributorShipmentsQueryResponse is one shipment in the listing.
type GetDistributorShipmentsQueryResponse struct {
	ShipmentID       kernel.UUID
	Status           shipment.Status
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	VerificationCode string
	CourierID        *kernel.UUID
	CreatedAt        time.Time
}
