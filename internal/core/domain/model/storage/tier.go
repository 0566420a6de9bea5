package storage

import (
	"errors"
	"math"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is the local capacity of one box size.
type Tier struct { //nolint:recvcheck //using for validation
	size     Size
	capacity int
	guard    guard.ConstructorGuard
}

// NewTier validates the size and requires 0 <= capacity <= math.MaxInt32.
func NewTier(size Size, capacity int) (Tier, error) {
	tier := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(tier.setSize(size), tier.setCapacity(capacity)); err != nil {
		return Tier{}, err
	}

	return tier, nil
}

func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

func (t Tier) Size() Size {
	return t.size
}

func (t Tier) Capacity() int {
	return t.capacity
}

func (t *Tier) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	t.size = size
	return nil
}

func (t *Tier) setCapacity(capacity int) error {
	if capacity < 0 || capacity > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, math.MaxInt32)
	}
	t.capacity = capacity
	return nil
}
