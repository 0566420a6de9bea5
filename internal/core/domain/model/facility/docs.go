// Package facility models the partner facilities that take overflow boxes.
//
// Each facility exposes, per box size, an informational capacity and a
// spaceLeft counter maintained by the partner. The allocation engine only
// reads these values; what is actually free is derived by subtracting the
// reservations held against the facility (see services.OverflowDirectory).
package facility
