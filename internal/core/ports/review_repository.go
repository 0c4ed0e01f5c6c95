package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review. At most one review may exist per shipment,
	// a second insert for the same shipment fails.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetAllByCourier retrieves every review left for the given courier,
	// newest first.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*review.Review, error)

	// AverageRatingByCourier returns the plain average of the courier's
	// ratings, or 0.0 when the courier has no reviews.
	AverageRatingByCourier(ctx context.Context, courierID kernel.UUID) (float64, error)
}
