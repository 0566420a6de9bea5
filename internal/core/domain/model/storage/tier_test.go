package storage_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTier(t *testing.T) {
	t.Run("should create tier with valid parameters", func(t *testing.T) {
		tier, err := storage.NewTier(storage.Medium, 28)

		require.NoError(t, err)
		require.NoError(t, tier.Validate())
		assert.Equal(t, storage.Medium, tier.Size())
		assert.Equal(t, 28, tier.Capacity())
	})

	t.Run("should allow zero capacity", func(t *testing.T) {
		tier, err := storage.NewTier(storage.Large, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, tier.Capacity())
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		_, err := storage.NewTier(storage.Small, -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unknown size", func(t *testing.T) {
		_, err := storage.NewTier(storage.Unknown, 10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report every violation", func(t *testing.T) {
		_, err := storage.NewTier(storage.Unknown, -3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTier_ZeroValue(t *testing.T) {
	var tier storage.Tier

	require.ErrorIs(t, tier.Validate(), storage.ErrTierIsNotConstructed)
}
