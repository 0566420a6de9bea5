package commands

import (
	"errors"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/guard"
)

var ErrRetrieveBoxCommandIsNotConstructed = errors.New(
	"RetrieveBoxCommand must be created via NewRetrieveBoxCommand constructor",
)

// RetrieveBoxCommand asks for one locally stored box of a size to be handed back.
type RetrieveBoxCommand struct { //nolint:recvcheck //using for validation
	name customer.Name
	size storage.Size

	guard guard.ConstructorGuard
}

// NewRetrieveBoxCommand validates the customer name and size.
func NewRetrieveBoxCommand(firstName, lastName string, size storage.Size) (RetrieveBoxCommand, error) {
	command := RetrieveBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	name, err := customer.NewName(firstName, lastName)
	if err != nil {
		return RetrieveBoxCommand{}, err
	}

	if err = errors.Join(
		command.setName(name),
		command.setSize(size),
	); err != nil {
		return RetrieveBoxCommand{}, err
	}

	return command, nil
}

func (c RetrieveBoxCommand) Validate() error {
	return c.guard.Validate(ErrRetrieveBoxCommandIsNotConstructed)
}

func (c RetrieveBoxCommand) Name() customer.Name {
	return c.name
}

func (c RetrieveBoxCommand) Size() storage.Size {
	return c.size
}

func (c *RetrieveBoxCommand) setName(name customer.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *RetrieveBoxCommand) setSize(size storage.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
