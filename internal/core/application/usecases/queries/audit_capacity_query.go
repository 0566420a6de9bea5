package queries

import (
	"errors"

	"frontdesk/internal/core/domain/services"
	"frontdesk/internal/pkg/guard"
)

var ErrAuditCapacityQueryIsNotConstructed = errors.New(
	"AuditCapacityQuery must be created via NewAuditCapacityQuery constructor",
)

// AuditCapacityQuery re-checks the capacity invariants over the whole store.
type AuditCapacityQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditCapacityQuery returns the parameterless query.
func NewAuditCapacityQuery() AuditCapacityQuery {
	return AuditCapacityQuery{guard: guard.NewConstructorGuard()}
}

func (q AuditCapacityQuery) Validate() error {
	return q.guard.Validate(ErrAuditCapacityQueryIsNotConstructed)
}

// AuditCapacityQueryResponse lists every violated invariant. An empty Faults
// slice means the store is consistent.
type AuditCapacityQueryResponse struct {
	TiersChecked      int
	FacilitiesChecked int
	Faults            []*services.ConsistencyFaultError
}
