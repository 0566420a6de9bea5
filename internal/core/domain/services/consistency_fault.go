package services

import (
	"errors"
	"fmt"
)

// ErrConsistencyFault marks an invariant violation in persisted capacity state.
// It is fatal for the operation that observes it.
var ErrConsistencyFault = errors.New("consistency fault")

// ConsistencyFaultError describes which counter broke which limit.
type ConsistencyFaultError struct {
	Subject string
	Limit   int
	Used    int
}

// NewConsistencyFaultError reports that used exceeds limit for subject.
func NewConsistencyFaultError(subject string, limit, used int) *ConsistencyFaultError {
	return &ConsistencyFaultError{Subject: subject, Limit: limit, Used: used}
}

func (e *ConsistencyFaultError) Error() string {
	return fmt.Sprintf("%s: %s uses %d of %d", ErrConsistencyFault, e.Subject, e.Used, e.Limit)
}

func (e *ConsistencyFaultError) Unwrap() error {
	return ErrConsistencyFault
}
