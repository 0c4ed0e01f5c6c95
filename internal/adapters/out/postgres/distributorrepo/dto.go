// Package distributorrepo provides data transfer objects and mapping functions for distributor persistence.
// This package implements the repository pattern for the distributor domain aggregate, handling
// the conversion between domain entities and database representations.
package distributorrepo

import (
	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DistributorDTO represents the database structure for persisting distributor aggregates.
type DistributorDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Phone   string     `gorm:"type:varchar(32);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for distributor entities.
// Overrides GORM's default naming convention to use "distributors".
func (DistributorDTO) TableName() string {
	return "distributors"
}

// AddressDTO represents the embedded postal address within the distributor table.
type AddressDTO struct {
	Street     string
	City       string
	District   string
	PostalCode string
}

// fromDomain converts a distributor domain aggregate to its database representation.
func fromDomain(aggregate *distributor.Distributor) DistributorDTO {
	address := aggregate.Address()

	return DistributorDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		Address: AddressDTO{
			Street:     address.Street,
			City:       address.City,
			District:   address.District,
			PostalCode: address.PostalCode,
		},
	}
}

// toDomain converts a database DTO to a distributor domain aggregate using RestoreDistributor.
func toDomain(dto DistributorDTO) (*distributor.Distributor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address := kernel.Address{
		Street:     dto.Address.Street,
		City:       dto.Address.City,
		District:   dto.Address.District,
		PostalCode: dto.Address.PostalCode,
	}

	return distributor.RestoreDistributor(id, dto.Name, dto.Phone, address)
}
