package queries

import (
	"context"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAvailabilityQueryHandler computes capacity minus live boxes per tier.
// Sizes without a tier row are absent from the result.
type GetAvailabilityQueryHandler struct {
	db     *gorm.DB
	ledger services.CapacityLedger
}

// NewGetAvailabilityQueryHandler reads directly through db, outside any unit of work.
func NewGetAvailabilityQueryHandler(db *gorm.DB) GetAvailabilityQueryHandler {
	return GetAvailabilityQueryHandler{
		db:     db,
		ledger: services.NewCapacityLedger(),
	}
}

// Handle fails with services.ErrConsistencyFault when a tier holds more boxes
// than its capacity; the count is never clamped.
func (h GetAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetAvailabilityQuery,
) (map[storage.Size]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	occupancy, err := readTierOccupancy(ctx, h.db)
	if err != nil {
		return nil, err
	}

	free := make(map[storage.Size]int, len(occupancy))
	for _, row := range occupancy {
		remaining, remErr := h.ledger.Remaining(row.tier, row.occupied)
		if remErr != nil {
			return nil, remErr
		}
		free[row.tier.Size()] = remaining
	}

	return free, nil
}

type tierOccupancy struct {
	tier     storage.Tier
	occupied int
}

func readTierOccupancy(ctx context.Context, db *gorm.DB) ([]tierOccupancy, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			t.size,
			t.capacity,
			COUNT(b.id)
		FROM storage_tiers t
		LEFT JOIN boxes b ON b.size = t.size
		GROUP BY t.size, t.capacity
		ORDER BY t.size
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]tierOccupancy, 0)
	for rows.Next() {
		var size, capacity, occupied int
		if err = rows.Scan(&size, &capacity, &occupied); err != nil {
			return nil, err
		}

		tier, tierErr := storage.NewTier(storage.Size(size), capacity)
		if tierErr != nil {
			return nil, tierErr
		}
		result = append(result, tierOccupancy{tier: tier, occupied: occupied})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
