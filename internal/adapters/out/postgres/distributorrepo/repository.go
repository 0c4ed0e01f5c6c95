package distributorrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDistributorRepository implements DistributorRepository using GORM.
type GormDistributorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDistributorRepository creates a new GORM distributor repository.
func NewGormDistributorRepository(db *gorm.DB, tracker aggregateTracker) *GormDistributorRepository {
	return &GormDistributorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new distributor to the database.
func (r *GormDistributorRepository) Add(ctx context.Context, aggregate *distributor.Distributor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing distributor to the database.
func (r *GormDistributorRepository) Update(ctx context.Context, aggregate *distributor.Distributor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DistributorDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a distributor by ID.
func (r *GormDistributorRepository) Get(ctx context.Context, id kernel.UUID) (*distributor.Distributor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DistributorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("distributor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
