// Package customer models the people who store boxes at the front desk.
//
// A customer is identified at the desk by first and last name; the pair is
// unique. Customers are immutable once created.
package customer
