package commands

import (
	"errors"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/guard"
)

var ErrStoreBoxCommandIsNotConstructed = errors.New(
	"StoreBoxCommand must be created via NewStoreBoxCommand constructor",
)

// StoreBoxCommand asks for one box of a size to be placed for a named customer.
//
// Example:
//
//	cmd, err := NewStoreBoxCommand("Ada", "Lovelace", storage.Small)
//	if err != nil {
//	    return err
//	}
//
//	placement, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCustomerNotFound):
//	    // unknown name
//	case err != nil:
//	    return err
//	case placement.Kind == services.PlacementRejected:
//	    // local tier and every facility are full
//	}
type StoreBoxCommand struct { //nolint:recvcheck //using for validation
	name customer.Name
	size storage.Size

	guard guard.ConstructorGuard
}

// NewStoreBoxCommand validates the customer name and size.
//
// Example:
//
//	cmd, err := commands.NewStoreBoxCommand("Ada", "Lovelace", storage.Small)
//	placement, err := handler.Handle(ctx, cmd)
func NewStoreBoxCommand(firstName, lastName string, size storage.Size) (StoreBoxCommand, error) {
	command := StoreBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	name, err := customer.NewName(firstName, lastName)
	if err != nil {
		return StoreBoxCommand{}, err
	}

	if err = errors.Join(
		command.setName(name),
		command.setSize(size),
	); err != nil {
		return StoreBoxCommand{}, err
	}

	return command, nil
}

func (c StoreBoxCommand) Validate() error {
	return c.guard.Validate(ErrStoreBoxCommandIsNotConstructed)
}

func (c StoreBoxCommand) Name() customer.Name {
	return c.name
}

func (c StoreBoxCommand) Size() storage.Size {
	return c.size
}

func (c *StoreBoxCommand) setName(name customer.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *StoreBoxCommand) setSize(size storage.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
