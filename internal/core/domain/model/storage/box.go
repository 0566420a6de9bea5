package storage

import (
	"errors"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/pkg/guard"
)

var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// Box is one occupied local slot. Boxes are created by a local placement and
// removed by a retrieval; they are never modified in between.
type Box struct {
	id         kernel.UUID
	size       Size
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewBox creates a box of the given size owned by customerID.
func NewBox(id kernel.UUID, size Size, customerID kernel.UUID) (*Box, error) {
	box := &Box{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		box.setID(id),
		box.setSize(size),
		box.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return box, nil
}

func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

func (b *Box) ID() kernel.UUID {
	return b.id
}

func (b *Box) Size() Size {
	return b.size
}

func (b *Box) CustomerID() kernel.UUID {
	return b.customerID
}

func (b *Box) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}

func (b *Box) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}
