// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with indexing for
// querying by status, distributor, courier, and the public tracking code.
type ShipmentDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DistributorID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	CourierID        *uuid.UUID  `gorm:"type:uuid;index"`
	Pickup           EndpointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery         EndpointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Weight           float64     `gorm:"not null"`
	Width            float64
	Length           float64
	Height           float64
	Size             int
	Status           int    `gorm:"not null;index"`
	Phone            string `gorm:"type:varchar(32);not null"`
	Description      string
	VerificationCode string `gorm:"type:varchar(16);not null;uniqueIndex"`
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// EndpointDTO represents the embedded pickup or delivery point within the
// shipment table: WGS84 coordinates plus the free-text postal address.
type EndpointDTO struct {
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	Street     string
	City       string
	District   string
	PostalCode string
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps all shipment attributes including the optional courier assignment and
// lifecycle timestamps.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	measure := aggregate.Measure()

	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		DistributorID:    aggregate.DistributorID().Bytes(),
		CourierID:        courierID,
		Pickup:           endpointFromDomain(aggregate.PickupLocation(), aggregate.PickupAddress()),
		Delivery:         endpointFromDomain(aggregate.DeliveryLocation(), aggregate.DeliveryAddress()),
		Weight:           measure.Weight(),
		Width:            measure.Width(),
		Length:           measure.Length(),
		Height:           measure.Height(),
		Size:             int(measure.Size()),
		Status:           int(aggregate.Status()),
		Phone:            aggregate.Phone(),
		Description:      aggregate.Description(),
		VerificationCode: aggregate.VerificationCode(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func endpointFromDomain(location kernel.Location, address kernel.Address) EndpointDTO {
	return EndpointDTO{
		Latitude:   location.Latitude(),
		Longitude:  location.Longitude(),
		Street:     address.Street,
		City:       address.City,
		District:   address.District,
		PostalCode: address.PostalCode,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status, courier assignment,
// and timestamps using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	distributorID, err := kernel.UUIDFromBytes(dto.DistributorID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	pickupLocation, pickupAddress, err := endpointToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	deliveryLocation, deliveryAddress, err := endpointToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	measure, err := shipment.NewMeasure(dto.Weight, dto.Width, dto.Length, dto.Height, shipment.SizeClass(dto.Size))
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		distributorID,
		courierID,
		pickupLocation,
		pickupAddress,
		deliveryLocation,
		deliveryAddress,
		measure,
		shipment.Status(dto.Status),
		dto.Phone,
		dto.Description,
		dto.VerificationCode,
		dto.PickupTime,
		dto.DeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func endpointToDomain(dto EndpointDTO) (kernel.Location, kernel.Address, error) {
	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return kernel.Location{}, kernel.Address{}, err
	}

	address := kernel.Address{
		Street:     dto.Street,
		City:       dto.City,
		District:   dto.District,
		PostalCode: dto.PostalCode,
	}

	return location, address, nil
}
