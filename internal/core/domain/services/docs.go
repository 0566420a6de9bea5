// Package services contains the domain services of the allocation engine.
//
// The package includes:
//   - CapacityLedger: local headroom arithmetic and box creation
//   - OverflowDirectory: derived facility availability and deterministic selection
//   - AllocationEngine: the store state machine (local, overflow, rejected)
//
// The services are pure: they work on values loaded by the caller and never
// touch repositories. Command handlers load state inside a unit of work, with
// the relevant rows locked, call these services, and persist the result. This
// keeps every check-then-commit sequence inside a single transaction.
//
// Any arithmetic that would go negative is reported as a ConsistencyFaultError
// and is never clamped.
package services
