package commands

import (
	"errors"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer under a (first, last) name pair.
// A fresh customer ID is generated when the command is built.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Ada", "Lovelace", "+44 20 7946 0018")
//	if err != nil {
//	    return fmt.Errorf("invalid customer: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, customer.ErrCustomerAlreadyExists) {
//	    // name pair is taken
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       customer.Name
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates the input and assigns a fresh customer id.
//
// Example:
//
//	cmd, err := commands.NewCreateCustomerCommand("Ada", "Lovelace", "555-0100")
//	if err != nil {
//	    return err // errs.ErrValueIsRequired for a blank field
//	}
//	err = handler.Handle(ctx, cmd)
func NewCreateCustomerCommand(firstName, lastName, phone string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	name, err := customer.NewName(firstName, lastName)
	if err != nil {
		return CreateCustomerCommand{}, err
	}

	if err = errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Name() customer.Name {
	return c.name
}

func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name customer.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return customer.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
