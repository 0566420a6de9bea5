package ports

import (
	"context"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
)

// FacilityRepository reads partner facilities. The engine never writes facility
// figures; Add exists for bootstrap.
type FacilityRepository interface {
	// Add inserts the facility unless one with that name already exists.
	Add(ctx context.Context, aggregate *facility.Facility) error

	// GetForUpdate reads one facility by name and locks its row.
	// Returns an error wrapping errs.ErrObjectNotFound when it does not exist.
	GetForUpdate(ctx context.Context, name string) (*facility.Facility, error)

	// ListForUpdate reads every facility ordered by name and locks their rows.
	ListForUpdate(ctx context.Context) ([]*facility.Facility, error)
}

// ReservationRepository records claims against facilities.
type ReservationRepository interface {
	// Add persists a new reservation, bound or open.
	Add(ctx context.Context, aggregate *reservation.Reservation) error

	// Tally counts reservations for one facility and size.
	Tally(ctx context.Context, facilityName string, size storage.Size) (reservation.Tally, error)

	// TallyBySize counts reservations for size, keyed by facility name.
	// Facilities without reservations are absent from the map.
	TallyBySize(ctx context.Context, size storage.Size) (map[string]reservation.Tally, error)
}
