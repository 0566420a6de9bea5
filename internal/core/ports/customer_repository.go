// Package ports defines the repository interfaces of the front desk domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"frontdesk/internal/core/domain/model/customer"
)

// CustomerRepository is the customer directory.
type CustomerRepository interface {
	// Add persists a new customer. Returns an error wrapping
	// customer.ErrCustomerAlreadyExists when the name pair is taken.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByName resolves a customer by first and last name.
	// Returns an error wrapping errs.ErrObjectNotFound when no customer matches.
	GetByName(ctx context.Context, name customer.Name) (*customer.Customer, error)
}
