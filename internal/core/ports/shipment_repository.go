package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByVerificationCode retrieves a shipment by its handover code.
	// Used by the public tracking endpoint.
	GetByVerificationCode(ctx context.Context, code string) (*shipment.Shipment, error)

	// GetAllCreatedNear retrieves every shipment in Created status whose
	// pickup point lies within radiusKm of the given position, measured
	// with the great-circle distance.
	GetAllCreatedNear(ctx context.Context, location kernel.Location, radiusKm float64) ([]*shipment.Shipment, error)

	// GetAllByDistributor retrieves every shipment created by the given
	// distributor, newest first.
	GetAllByDistributor(ctx context.Context, distributorID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllByCourier retrieves every shipment assigned to the given
	// courier, newest first.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error)

	// TryAssign atomically claims a Created shipment for the courier,
	// moving it to Assigned. Exactly one concurrent caller wins; every
	// other caller observes false. The shipment must exist.
	TryAssign(ctx context.Context, id, courierID kernel.UUID) (bool, error)
}
