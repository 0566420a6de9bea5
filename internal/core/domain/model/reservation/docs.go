// Package reservation models claims on a partner facility's spare capacity.
//
// A reservation is either bound to a customer (an overflow placement) or open
// (a placeholder hold with no customer). Both kinds count against the
// facility's derived availability. Reservations are never modified and no
// operation of the engine removes them.
package reservation
