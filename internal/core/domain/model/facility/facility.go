package facility

import (
	"errors"
	"fmt"
	"strings"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("facilityName")
	ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")
)

// Facility is a partner storage site. Facilities are identified and ordered by name.
type Facility struct {
	name  string
	slots map[storage.Size]Slot
	guard guard.ConstructorGuard
}

// NewFacility requires a non-empty name and a valid Slot for every size in
// storage.AllSizes.
func NewFacility(name string, slots map[storage.Size]Slot) (*Facility, error) {
	f := &Facility{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(f.setName(name), f.setSlots(slots)); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Facility) Validate() error {
	if f == nil {
		return ErrFacilityIsNotConstructed
	}
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

func (f *Facility) Name() string {
	return f.name
}

// Slot returns the figures for size.
func (f *Facility) Slot(size storage.Size) (Slot, error) {
	if err := size.Validate(); err != nil {
		return Slot{}, err
	}
	return f.slots[size], nil
}

// SpaceLeft is shorthand for Slot(size).SpaceLeft().
func (f *Facility) SpaceLeft(size storage.Size) (int, error) {
	slot, err := f.Slot(size)
	if err != nil {
		return 0, err
	}
	return slot.SpaceLeft(), nil
}

func (f *Facility) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *Facility) setSlots(slots map[storage.Size]Slot) error {
	copied := make(map[storage.Size]Slot, len(storage.AllSizes()))
	for _, size := range storage.AllSizes() {
		slot, ok := slots[size]
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause("slots", fmt.Errorf("missing %s slot", size))
		}
		if err := slot.Validate(); err != nil {
			return err
		}
		copied[size] = slot
	}
	f.slots = copied
	return nil
}
