package commands

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/ports"
	"frontdesk/internal/pkg/errs"
)

// ErrCustomerNotFound is returned when a store or retrieve names a customer
// that the directory cannot resolve. It wraps errs.ErrObjectNotFound.
var ErrCustomerNotFound = fmt.Errorf("customer not found: %w", errs.ErrObjectNotFound)

// resolveCustomer maps a directory miss onto ErrCustomerNotFound, keeping the
// name in the message.
func resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	name customer.Name,
) (*customer.Customer, error) {
	found, err := repo.GetByName(ctx, name)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}
