// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. Implements the repository pattern for the
// customer entity, converting between the domain model and its relational
// representation.
package customerrepo

import (
	"database/sql"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The unique index on email is the storage-level backstop for the email
// uniqueness rule enforced by the application layer.
type CustomerDTO struct {
	ID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name  string         `gorm:"type:varchar(100);not null"`
	Email string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone sql.NullString `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
// The entity must already carry an identifier.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: sql.NullString{String: aggregate.Phone(), Valid: aggregate.Phone() != ""},
	}
}

// toDomain converts a database DTO to a customer entity using the trusting
// restore constructor.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone.String)
}
