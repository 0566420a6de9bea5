// Package kernel provides the shared domain primitives of the front desk model.
//
// The package includes:
//   - UUID: the identifier value object used by customers, boxes and reservations
//
// Primitives are immutable and safe for concurrent use.
package kernel
