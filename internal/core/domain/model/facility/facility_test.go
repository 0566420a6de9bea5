package facility_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, capacity, spaceLeft int) facility.Slot {
	t.Helper()
	slot, err := facility.NewSlot(capacity, spaceLeft)
	require.NoError(t, err)
	return slot
}

func TestNewSlot(t *testing.T) {
	t.Run("should keep both figures", func(t *testing.T) {
		slot, err := facility.NewSlot(92, 70)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.Equal(t, 92, slot.Capacity())
		assert.Equal(t, 70, slot.SpaceLeft())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := facility.NewSlot(-1, -2)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "capacity")
		assert.Contains(t, err.Error(), "spaceLeft")
	})
}

func TestNewFacility(t *testing.T) {
	slots := map[storage.Size]facility.Slot{
		storage.Small:  mustSlot(t, 92, 80),
		storage.Medium: mustSlot(t, 28, 20),
		storage.Large:  mustSlot(t, 24, 0),
	}

	t.Run("should create facility with all slots", func(t *testing.T) {
		f, err := facility.NewFacility(" Eastgate ", slots)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, "Eastgate", f.Name())

		left, err := f.SpaceLeft(storage.Medium)
		require.NoError(t, err)
		assert.Equal(t, 20, left)

		slot, err := f.Slot(storage.Small)
		require.NoError(t, err)
		assert.Equal(t, 92, slot.Capacity())
	})

	t.Run("should not alias caller map", func(t *testing.T) {
		own := map[storage.Size]facility.Slot{
			storage.Small:  mustSlot(t, 1, 1),
			storage.Medium: mustSlot(t, 1, 1),
			storage.Large:  mustSlot(t, 1, 1),
		}
		f, err := facility.NewFacility("Westgate", own)
		require.NoError(t, err)

		own[storage.Small] = mustSlot(t, 5, 5)

		left, err := f.SpaceLeft(storage.Small)
		require.NoError(t, err)
		assert.Equal(t, 1, left)
	})

	t.Run("should require name", func(t *testing.T) {
		f, err := facility.NewFacility("  ", slots)

		require.ErrorIs(t, err, facility.ErrNameIsRequired)
		assert.Nil(t, f)
	})

	t.Run("should require every size", func(t *testing.T) {
		partial := map[storage.Size]facility.Slot{storage.Small: mustSlot(t, 1, 1)}

		f, err := facility.NewFacility("Northside", partial)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "missing Medium slot")
		assert.Nil(t, f)
	})

	t.Run("should reject unconstructed slot", func(t *testing.T) {
		bad := map[storage.Size]facility.Slot{
			storage.Small:  {},
			storage.Medium: mustSlot(t, 1, 1),
			storage.Large:  mustSlot(t, 1, 1),
		}

		_, err := facility.NewFacility("Northside", bad)

		require.ErrorIs(t, err, facility.ErrSlotIsNotConstructed)
	})

	t.Run("should reject unknown size lookups", func(t *testing.T) {
		f, err := facility.NewFacility("Northside", slots)
		require.NoError(t, err)

		_, err = f.SpaceLeft(storage.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
