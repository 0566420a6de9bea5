package commands

import (
	"context"
)

// RetrieveBoxCommandHandler releases one local box.
//
// Only local boxes can be retrieved. A customer whose box went to an overflow
// facility gets false, and the reservation stays where it is.
type RetrieveBoxCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewRetrieveBoxCommandHandler creates the handler. Retrieval touches customers
// and boxes only, so it needs just a StorageUoWFactory.
func NewRetrieveBoxCommandHandler(uowFactory StorageUoWFactory) RetrieveBoxCommandHandler {
	return RetrieveBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether a box was removed. Fails with ErrCustomerNotFound
// only when the name does not resolve.
func (h RetrieveBoxCommandHandler) Handle(ctx context.Context, cmd RetrieveBoxCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := resolveCustomer(ctx, uow.CustomerRepository(), cmd.Name())
	if err != nil {
		return false, err
	}

	removed, err := uow.BoxRepository().RemoveOne(ctx, cmd.Size(), owner.ID())
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
