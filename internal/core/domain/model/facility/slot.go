package facility

import (
	"errors"
	"math"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot constructor")

// Slot is a facility's capacity figures for one box size.
type Slot struct { //nolint:recvcheck //using for validation
	capacity  int
	spaceLeft int
	guard     guard.ConstructorGuard
}

// NewSlot creates the per-size figures of a facility. Both values must lie in
// 0..math.MaxInt32; spaceLeft is not bounded by capacity.
func NewSlot(capacity, spaceLeft int) (Slot, error) {
	slot := Slot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(slot.setCapacity(capacity), slot.setSpaceLeft(spaceLeft)); err != nil {
		return Slot{}, err
	}

	return slot, nil
}

func (s Slot) Validate() error {
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// Capacity is the partner's nominal capacity. It takes no part in allocation.
func (s Slot) Capacity() int {
	return s.capacity
}

// SpaceLeft is the partner-reported number of free slots.
func (s Slot) SpaceLeft() int {
	return s.spaceLeft
}

func (s *Slot) setCapacity(capacity int) error {
	if capacity < 0 || capacity > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, math.MaxInt32)
	}
	s.capacity = capacity
	return nil
}

func (s *Slot) setSpaceLeft(spaceLeft int) error {
	if spaceLeft < 0 || spaceLeft > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("spaceLeft", spaceLeft, 0, math.MaxInt32)
	}
	s.spaceLeft = spaceLeft
	return nil
}
