package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the full detail of one shipment for the
// distributor that created it. Shipments of other distributors are reported
// as not found rather than forbidden, so identifiers cannot be probed.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a shipment detail query.
func NewGetShipmentQuery(shipmentID, distributorID kernel.UUID) (GetShipmentQuery, error) {
	q := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setDistributorID(distributorID),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// DistributorID returns the identifier of the requesting distributor.
func (q GetShipmentQuery) DistributorID() kernel.UUID { return q.distributorID }

func (q *GetShipmentQuery) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.shipmentID = id
	return nil
}

func (q *GetShipmentQuery) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.distributorID = id
	return nil
}

// GetShipmentQueryResponse is the shipment detail read model.
type GetShipmentQueryResponse struct {
	ShipmentID       kernel.UUID
	Status           shipment.Status
	PickupLocation   kernel.Location
	PickupAddress    kernel.Address
	DeliveryLocation kernel.Location
	DeliveryAddress  kernel.Address
	Measure          shipment.Measure
	RecipientPhone   string
	Description      string
	VerificationCode string
	CourierID        *kernel.UUID
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	CreatedAt        time.Time
}
