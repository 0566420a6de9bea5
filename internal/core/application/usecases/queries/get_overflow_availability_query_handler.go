package queries

import (
	"context"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOverflowAvailabilityQueryHandler reports spaceLeft minus open holds minus
// bound reservations for every facility. The figure is the one store requests
// select on, recomputed on every call.
type GetOverflowAvailabilityQueryHandler struct {
	db        *gorm.DB
	directory services.OverflowDirectory
}

// NewGetOverflowAvailabilityQueryHandler reads directly through db, outside any unit of work.
func NewGetOverflowAvailabilityQueryHandler(db *gorm.DB) GetOverflowAvailabilityQueryHandler {
	return GetOverflowAvailabilityQueryHandler{
		db:        db,
		directory: services.NewOverflowDirectory(),
	}
}

func (h GetOverflowAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetOverflowAvailabilityQuery,
) (map[string]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := readFacilityLoads(ctx, h.db, query.Size())
	if err != nil {
		return nil, err
	}

	return h.directory.Availability(loads, query.Size())
}

// readFacilityLoads reads every facility with its reservation tally for size.
func readFacilityLoads(ctx context.Context, db *gorm.DB, size storage.Size) ([]services.FacilityLoad, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			f.name,
			f.small_capacity,
			f.small_space_left,
			f.medium_capacity,
			f.medium_space_left,
			f.large_capacity,
			f.large_space_left,
			COUNT(r.id) FILTER (WHERE r.customer_id IS NULL),
			COUNT(r.id) FILTER (WHERE r.customer_id IS NOT NULL)
		FROM facilities f
		LEFT JOIN reservations r ON r.facility_name = f.name AND r.size = ?
		GROUP BY f.name
		ORDER BY f.name
	`, int(size)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]services.FacilityLoad, 0)
	for rows.Next() {
		var name string
		var figures [6]int
		var tally reservation.Tally
		if err = rows.Scan(
			&name,
			&figures[0], &figures[1],
			&figures[2], &figures[3],
			&figures[4], &figures[5],
			&tally.Open,
			&tally.Bound,
		); err != nil {
			return nil, err
		}

		f, fErr := buildFacility(name, figures)
		if fErr != nil {
			return nil, fErr
		}
		loads = append(loads, services.FacilityLoad{Facility: f, Reservations: tally})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}

// buildFacility takes (capacity, spaceLeft) pairs in AllSizes order.
func buildFacility(name string, figures [6]int) (*facility.Facility, error) {
	slots := make(map[storage.Size]facility.Slot, len(storage.AllSizes()))
	for i, size := range storage.AllSizes() {
		slot, err := facility.NewSlot(figures[2*i], figures[2*i+1])
		if err != nil {
			return nil, err
		}
		slots[size] = slot
	}
	return facility.NewFacility(name, slots)
}
