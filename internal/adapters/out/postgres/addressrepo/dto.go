// Package addressrepo provides read access to client delivery addresses.
package addressrepo

import (
	"appcenar/internal/core/domain/model/address"
	"appcenar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure of one delivery address.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address domain entity to its database representation.
func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:          a.ID().Bytes(),
		ClientID:    a.ClientID().Bytes(),
		Name:        a.Name(),
		Description: a.Description(),
	}
}

// toDomain converts a database DTO to an address domain entity.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return address.NewAddress(id, clientID, dto.Name, dto.Description)
}
