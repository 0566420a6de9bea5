package commands_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, first, last string) *customer.Customer {
	t.Helper()
	name, err := customer.NewName(first, last)
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, "555-0100")
	require.NoError(t, err)
	return c
}

func newTier(t *testing.T, size storage.Size, capacity int) storage.Tier {
	t.Helper()
	tier, err := storage.NewTier(size, capacity)
	require.NoError(t, err)
	return tier
}

// newFacility builds a facility with the same figures for every size.
func newFacility(t *testing.T, name string, spaceLeft int) *facility.Facility {
	t.Helper()
	slots := make(map[storage.Size]facility.Slot)
	for _, size := range storage.AllSizes() {
		slot, err := facility.NewSlot(spaceLeft, spaceLeft)
		require.NoError(t, err)
		slots[size] = slot
	}
	f, err := facility.NewFacility(name, slots)
	require.NoError(t, err)
	return f
}
