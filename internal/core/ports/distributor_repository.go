package ports

import (
	"context"

	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"
)

// DistributorRepository defines the persistence contract for distributor aggregates.
type DistributorRepository interface {
	// Add persists a new distributor aggregate to storage.
	Add(ctx context.Context, aggregate *distributor.Distributor) error

	// Update persists changes to an existing distributor aggregate.
	// The distributor must exist in the repository.
	Update(ctx context.Context, aggregate *distributor.Distributor) error

	// Get retrieves a distributor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*distributor.Distributor, error)
}
