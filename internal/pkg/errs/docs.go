// Package errs provides standardized error types for the front desk service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a business rule
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ObjectNotFoundError: a lookup matched nothing
//
// Each error type has a sentinel (ErrValueIsRequired, ...), a struct carrying the
// details, constructors with and without cause, and an Unwrap method returning the
// sentinel so callers can classify failures with errors.Is.
package errs
