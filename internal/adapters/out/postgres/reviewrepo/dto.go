// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
// This package implements the repository pattern for the review domain aggregate, handling
// the conversion between domain entities and database representations.
package reviewrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review aggregates.
// The unique index on shipment_id enforces at most one review per shipment;
// a concurrent second insert fails at the database level.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string
	Reviewer   int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		ShipmentID: aggregate.ShipmentID().Bytes(),
		CourierID:  aggregate.CourierID().Bytes(),
		Rating:     aggregate.Rating(),
		Comment:    aggregate.Comment(),
		Reviewer:   int(aggregate.Reviewer()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate using RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id,
		shipmentID,
		courierID,
		dto.Rating,
		dto.Comment,
		review.Reviewer(dto.Reviewer),
		dto.CreatedAt,
	)
}
