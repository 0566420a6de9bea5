// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"frontdesk/internal/pkg/guard"
)

var ErrGetAvailabilityQueryIsNotConstructed = errors.New(
	"GetAvailabilityQuery must be created via NewGetAvailabilityQuery constructor",
)

// GetAvailabilityQuery reports the free local slots of every seeded size.
//
// Example:
//
//	handler := NewGetAvailabilityQueryHandler(db)
//	free, err := handler.Handle(ctx, NewGetAvailabilityQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(free[storage.Small])
type GetAvailabilityQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailabilityQuery returns the parameterless query.
func NewGetAvailabilityQuery() GetAvailabilityQuery {
	return GetAvailabilityQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailabilityQueryIsNotConstructed)
}
