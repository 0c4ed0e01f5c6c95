// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves every enabled courier in Active status with
	// a known position. Used by the internal fleet listing.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// GetActiveNear retrieves every enabled courier in Active status whose
	// position lies within radiusKm of the given point, measured with the
	// great-circle distance.
	GetActiveNear(ctx context.Context, location kernel.Location, radiusKm float64) ([]*courier.Courier, error)
}
