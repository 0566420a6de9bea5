// Package storage models the front desk's own storage area.
//
// The package includes:
//   - Size: the three box sizes (Small, Medium, Large)
//   - Tier: a size together with its fixed local capacity
//   - Box: one occupied local slot owned by a customer
//
// Key business rules:
//   - A tier's capacity is never negative and is never changed by allocation
//   - The number of live boxes of a size never exceeds that tier's capacity
//     (enforced by services.CapacityLedger under a tier row lock)
package storage
