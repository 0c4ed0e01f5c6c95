package courierrepo

import (
	"context"
	"errors"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces zero values through the update.
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all enabled couriers in Active status who have
// reported a position at least once.
func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Where("status = ?", int(courier.StatusActive)).
		Where("latitude IS NOT NULL").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetActiveNear retrieves all enabled couriers in Active status within
// radiusKm of the given point. A bounding box prefilter runs in SQL; the
// exact great-circle distance check runs in memory on the survivors.
func (r *GormCourierRepository) GetActiveNear(
	ctx context.Context,
	location kernel.Location,
	radiusKm float64,
) ([]*courier.Courier, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	latDelta := (radiusKm / kernel.EarthRadiusKm) * (180 / math.Pi)
	lonDelta := latDelta
	if cosLat := math.Cos(location.Latitude() * math.Pi / 180); cosLat > 0.01 {
		lonDelta = latDelta / cosLat
	}

	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Where("status = ?", int(courier.StatusActive)).
		Where("latitude BETWEEN ? AND ?", location.Latitude()-latDelta, location.Latitude()+latDelta).
		Where("longitude BETWEEN ? AND ?", location.Longitude()-lonDelta, location.Longitude()+lonDelta).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	nearby := make([]CourierDTO, 0, len(dtos))
	for _, dto := range dtos {
		distance := kernel.DistanceKm(
			location.Latitude(), location.Longitude(),
			*dto.Latitude, *dto.Longitude,
		)
		if distance > radiusKm {
			continue
		}
		nearby = append(nearby, dto)
	}

	return toDomainAll(nearby)
}

func toDomainAll(dtos []CourierDTO) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
