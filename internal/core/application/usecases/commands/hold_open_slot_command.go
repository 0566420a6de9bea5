package commands

import (
	"errors"
	"strings"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/guard"
)

var ErrHoldOpenSlotCommandIsNotConstructed = errors.New(
	"HoldOpenSlotCommand must be created via NewHoldOpenSlotCommand constructor",
)

// HoldOpenSlotCommand books a customer-less placeholder slot at a facility.
// The hold counts against the facility exactly like a customer reservation.
type HoldOpenSlotCommand struct { //nolint:recvcheck //using for validation
	facilityName string
	size         storage.Size

	guard guard.ConstructorGuard
}

// NewHoldOpenSlotCommand validates the facility name (trimmed) and size.
func NewHoldOpenSlotCommand(facilityName string, size storage.Size) (HoldOpenSlotCommand, error) {
	command := HoldOpenSlotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFacilityName(facilityName),
		command.setSize(size),
	); err != nil {
		return HoldOpenSlotCommand{}, err
	}

	return command, nil
}

func (c HoldOpenSlotCommand) Validate() error {
	return c.guard.Validate(ErrHoldOpenSlotCommandIsNotConstructed)
}

func (c HoldOpenSlotCommand) FacilityName() string {
	return c.facilityName
}

func (c HoldOpenSlotCommand) Size() storage.Size {
	return c.size
}

func (c *HoldOpenSlotCommand) setFacilityName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return facility.ErrNameIsRequired
	}

	c.facilityName = name
	return nil
}

func (c *HoldOpenSlotCommand) setSize(size storage.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
