package storage_test

import (
	"testing"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  storage.Size
	}{
		{input: "Small", want: storage.Small},
		{input: "medium", want: storage.Medium},
		{input: " LARGE ", want: storage.Large},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := storage.ParseSize(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown size", func(t *testing.T) {
		got, err := storage.ParseSize("Huge")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, storage.Unknown, got)
		assert.Contains(t, err.Error(), `"Huge" is not a box size`)
	})

	t.Run("should reject empty size", func(t *testing.T) {
		_, err := storage.ParseSize("")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSize_Validate(t *testing.T) {
	for _, s := range storage.AllSizes() {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, storage.Unknown.Validate())
	require.Error(t, storage.Size(42).Validate())
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "Small", storage.Small.String())
	assert.Equal(t, "Medium", storage.Medium.String())
	assert.Equal(t, "Large", storage.Large.String())
	assert.Equal(t, "Size(42)", storage.Size(42).String())
}
