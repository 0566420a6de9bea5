// Package customerrepo persists the customer directory.
package customerrepo

import (
	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers row. The (first_name, last_name) pair is unique.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_name"`
	LastName  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_name"`
	Phone     string    `gorm:"type:varchar(64);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		FirstName: c.Name().First(),
		LastName:  c.Name().Last(),
		Phone:     c.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	name, err := customer.NewName(dto.FirstName, dto.LastName)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, name, dto.Phone)
}
