// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The position columns are nullable: a courier has no coordinates until the
// first availability report.
type CourierDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Phone             string    `gorm:"type:varchar(32);not null"`
	Transport         int       `gorm:"not null"`
	Status            int       `gorm:"not null;index"`
	Enabled           bool      `gorm:"not null"`
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt *time.Time
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Phone:             aggregate.Phone(),
		Transport:         int(aggregate.Transport()),
		Status:            int(aggregate.Status()),
		Enabled:           aggregate.Enabled(),
		LocationUpdatedAt: aggregate.LocationUpdatedAt(),
	}

	if loc := aggregate.Location(); loc != nil {
		latitude := loc.Latitude()
		longitude := loc.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate including availability, activation,
// and the last reported position using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		courier.Transport(dto.Transport),
		courier.Status(dto.Status),
		dto.Enabled,
		location,
		dto.LocationUpdatedAt,
	)
}
