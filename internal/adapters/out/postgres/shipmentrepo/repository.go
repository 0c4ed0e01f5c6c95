package shipmentrepo

import (
	"context"
	"errors"
	"math"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces zero values through, so cancelling clears courier_id.
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByVerificationCode retrieves a shipment by its public tracking code.
func (r *GormShipmentRepository) GetByVerificationCode(ctx context.Context, code string) (*shipment.Shipment, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("verification code")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "verification_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCreatedNear retrieves all shipments in Created status whose pickup
// point lies within radiusKm of the given position. A bounding box prefilter
// runs in SQL; the exact great-circle distance check runs in memory on the
// survivors.
func (r *GormShipmentRepository) GetAllCreatedNear(
	ctx context.Context,
	location kernel.Location,
	radiusKm float64,
) ([]*shipment.Shipment, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	latDelta := (radiusKm / kernel.EarthRadiusKm) * (180 / math.Pi)
	lonDelta := latDelta
	if cosLat := math.Cos(location.Latitude() * math.Pi / 180); cosLat > 0.01 {
		lonDelta = latDelta / cosLat
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(shipment.Created)).
		Where("pickup_latitude BETWEEN ? AND ?", location.Latitude()-latDelta, location.Latitude()+latDelta).
		Where("pickup_longitude BETWEEN ? AND ?", location.Longitude()-lonDelta, location.Longitude()+lonDelta).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		distance := kernel.DistanceKm(
			location.Latitude(), location.Longitude(),
			dto.Pickup.Latitude, dto.Pickup.Longitude,
		)
		if distance > radiusKm {
			continue
		}

		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// GetAllByDistributor retrieves all shipments created by the distributor, newest first.
func (r *GormShipmentRepository) GetAllByDistributor(
	ctx context.Context,
	distributorID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := distributorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "distributor_id = ?", distributorID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByCourier retrieves all shipments assigned to the courier, newest first.
func (r *GormShipmentRepository) GetAllByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// TryAssign atomically claims a Created shipment for the courier using a
// conditional update. The status filter makes the claim a compare-and-swap:
// out of any number of concurrent callers exactly one matches the Created
// row and wins, everyone else sees zero rows affected.
func (r *GormShipmentRepository) TryAssign(ctx context.Context, id, courierID kernel.UUID) (bool, error) {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(shipment.Created)).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"status":     int(shipment.Assigned),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
