package customer

import (
	"errors"
	"strings"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var (
	ErrPhoneIsRequired          = errs.NewValueIsRequiredError("phone")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrCustomerAlreadyExists is returned by repositories when the name pair is
	// already registered. Other insert failures are returned as they are.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

// Customer is a registered storage customer.
type Customer struct {
	id    kernel.UUID
	name  Name
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer creates a customer. The same constructor restores customers from storage.
func NewCustomer(id kernel.UUID, name Name, phone string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() Name {
	return c.name
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
