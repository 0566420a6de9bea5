package queries

import (
	"errors"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/guard"
)

var ErrGetOverflowAvailabilityQueryIsNotConstructed = errors.New(
	"GetOverflowAvailabilityQuery must be created via NewGetOverflowAvailabilityQuery constructor",
)

// GetOverflowAvailabilityQuery reports derived availability per facility for one size.
type GetOverflowAvailabilityQuery struct {
	size  storage.Size
	guard guard.ConstructorGuard
}

// NewGetOverflowAvailabilityQuery rejects an invalid size.
func NewGetOverflowAvailabilityQuery(size storage.Size) (GetOverflowAvailabilityQuery, error) {
	if err := size.Validate(); err != nil {
		return GetOverflowAvailabilityQuery{}, err
	}
	return GetOverflowAvailabilityQuery{size: size, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverflowAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetOverflowAvailabilityQueryIsNotConstructed)
}

func (q GetOverflowAvailabilityQuery) Size() storage.Size {
	return q.size
}
