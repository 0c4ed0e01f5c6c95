package reviewrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
// Requires a gorm connection opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database. A second review for the same
// shipment violates the unique index and yields OperationNotAllowed,
// regardless of which reviewer submitted first.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewOperationNotAllowedErrorWithCause("shipment has already been reviewed", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByCourier retrieves all reviews left for the courier, newest first.
func (r *GormReviewRepository) GetAllByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*review.Review, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}

// AverageRatingByCourier returns the plain average of the courier's ratings,
// or 0.0 when the courier has no reviews.
func (r *GormReviewRepository) AverageRatingByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) (float64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var average float64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("courier_id = ?", courierID.Bytes()).
		Scan(&average).Error
	if err != nil {
		return 0, err
	}

	return average, nil
}
