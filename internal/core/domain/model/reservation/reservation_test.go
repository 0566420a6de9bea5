package reservation_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create bound reservation", func(t *testing.T) {
		r, err := reservation.NewReservation(id, "Eastgate", storage.Large, customerID)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Eastgate", r.FacilityName())
		assert.Equal(t, storage.Large, r.Size())
		require.NotNil(t, r.CustomerID())
		assert.True(t, r.CustomerID().IsEqual(customerID))
		assert.False(t, r.IsOpen())
	})

	t.Run("should require customer", func(t *testing.T) {
		r, err := reservation.NewReservation(id, "Eastgate", storage.Large, kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Nil(t, r)
	})

	t.Run("should require facility name", func(t *testing.T) {
		r, err := reservation.NewReservation(id, " ", storage.Large, customerID)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, r)
	})

	t.Run("should reject unknown size", func(t *testing.T) {
		r, err := reservation.NewReservation(id, "Eastgate", storage.Unknown, customerID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, r)
	})
}

func TestNewOpenHold(t *testing.T) {
	r, err := reservation.NewOpenHold(kernel.NewUUID(), "Northside", storage.Small)

	require.NoError(t, err)
	assert.True(t, r.IsOpen())
	assert.Nil(t, r.CustomerID())
}

func TestReservation_CustomerIDIsCopied(t *testing.T) {
	customerID := kernel.NewUUID()
	r, err := reservation.NewReservation(kernel.NewUUID(), "Eastgate", storage.Small, customerID)
	require.NoError(t, err)

	got := r.CustomerID()
	*got = kernel.NewUUID()

	assert.True(t, r.CustomerID().IsEqual(customerID))
}

func TestTally_Total(t *testing.T) {
	assert.Equal(t, 0, reservation.Tally{}.Total())
	assert.Equal(t, 5, reservation.Tally{Open: 2, Bound: 3}.Total())
}
