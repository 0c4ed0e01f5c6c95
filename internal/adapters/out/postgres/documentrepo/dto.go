// Package documentrepo provides data transfer objects and mapping functions for document persistence.
// This package implements the repository pattern for the verification document aggregate, handling
// the conversion between domain entities and database representations.
package documentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting document aggregates.
// Indexed by owner and verification state to serve the review queue and the
// per-account activation check.
type DocumentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerRole       int       `gorm:"not null"`
	Kind            int       `gorm:"not null"`
	FileURL         string    `gorm:"not null"`
	Verification    int       `gorm:"not null;index"`
	RejectionReason string
	UploadedAt      time.Time `gorm:"not null"`
	VerifiedAt      *time.Time
}

// TableName specifies the database table name for document entities.
// Overrides GORM's default naming convention to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

// fromDomain converts a document domain aggregate to its database representation.
func fromDomain(aggregate *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		OwnerRole:       int(aggregate.OwnerRole()),
		Kind:            int(aggregate.Kind()),
		FileURL:         aggregate.FileURL(),
		Verification:    int(aggregate.Verification()),
		RejectionReason: aggregate.RejectionReason(),
		UploadedAt:      aggregate.UploadedAt(),
		VerifiedAt:      aggregate.VerifiedAt(),
	}
}

// toDomain converts a database DTO to a document domain aggregate using RestoreDocument.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id,
		ownerID,
		document.Role(dto.OwnerRole),
		document.Kind(dto.Kind),
		dto.FileURL,
		document.Verification(dto.Verification),
		dto.RejectionReason,
		dto.UploadedAt,
		dto.VerifiedAt,
	)
}
