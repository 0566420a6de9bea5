package services_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func newTier(t *testing.T, size storage.Size, capacity int) storage.Tier {
	t.Helper()
	tier, err := storage.NewTier(size, capacity)
	require.NoError(t, err)
	return tier
}

// newFacility builds a facility whose every size has the given spaceLeft.
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

func load(t *testing.T, name string, spaceLeft, open, bound int) services.FacilityLoad {
	t.Helper()
	return services.FacilityLoad{
		Facility:     newFacility(t, name, spaceLeft),
		Reservations: reservation.Tally{Open: open, Bound: bound},
	}
}

func newCustomer(t *testing.T, first, last string) *customer.Customer {
	t.Helper()
	name, err := customer.NewName(first, last)
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, "555-0100")
	require.NoError(t, err)
	return c
}
