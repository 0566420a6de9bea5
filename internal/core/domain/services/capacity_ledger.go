package services

import (
	"errors"
	"fmt"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"
)

// ErrNoLocalCapacity is returned by Occupy when the tier is full.
var ErrNoLocalCapacity = errors.New("no local capacity left")

// CapacityLedger does the arithmetic over a local tier and its live boxes.
//
// Example:
//
//	ledger := NewCapacityLedger()
//	left, err := ledger.Remaining(tier, occupied)
//	if err != nil {
//	    return err // ErrConsistencyFault
//	}
//	if left > 0 {
//	    box, err := ledger.Occupy(tier, occupied, customerID)
//	    ...
//	}
type CapacityLedger struct{}

// NewCapacityLedger creates the stateless ledger.
//
// Example:
//
//	ledger := services.NewCapacityLedger()
//	free, err := ledger.Remaining(tier, occupied) // ErrConsistencyFault when occupied > capacity
func NewCapacityLedger() CapacityLedger {
	return CapacityLedger{}
}

// Remaining returns capacity minus occupied. A negative result, or a negative
// occupied count, is a ConsistencyFaultError.
func (l CapacityLedger) Remaining(tier storage.Tier, occupied int) (int, error) {
	if err := tier.Validate(); err != nil {
		return 0, err
	}

	remaining := tier.Capacity() - occupied
	if occupied < 0 || remaining < 0 {
		return 0, NewConsistencyFaultError(fmt.Sprintf("%s tier", tier.Size()), tier.Capacity(), occupied)
	}

	return remaining, nil
}

// Occupy creates a box for customerID, consuming one unit of headroom.
// Returns ErrNoLocalCapacity when Remaining is zero.
func (l CapacityLedger) Occupy(tier storage.Tier, occupied int, customerID kernel.UUID) (*storage.Box, error) {
	remaining, err := l.Remaining(tier, occupied)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		return nil, ErrNoLocalCapacity
	}

	return storage.NewBox(kernel.NewUUID(), tier.Size(), customerID)
}
