package queries

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

// AuditCapacityQueryHandler reads the store and reports:
//   - tiers holding more boxes than their capacity
//   - boxes whose size has no tier row
//   - facilities whose reservations exceed spaceLeft for a size
//
// It only reads; nothing is repaired.
type AuditCapacityQueryHandler struct {
	db        *gorm.DB
	ledger    services.CapacityLedger
	directory services.OverflowDirectory
}

// NewAuditCapacityQueryHandler creates the read-only audit. It never writes.
func NewAuditCapacityQueryHandler(db *gorm.DB) AuditCapacityQueryHandler {
	return AuditCapacityQueryHandler{
		db:        db,
		ledger:    services.NewCapacityLedger(),
		directory: services.NewOverflowDirectory(),
	}
}

func (h AuditCapacityQueryHandler) Handle(
	ctx context.Context,
	query AuditCapacityQuery,
) (AuditCapacityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuditCapacityQueryResponse{}, err
	}

	var response AuditCapacityQueryResponse
	collect := func(err error) error {
		var fault *services.ConsistencyFaultError
		if errors.As(err, &fault) {
			response.Faults = append(response.Faults, fault)
			return nil
		}
		return err
	}

	occupancy, err := readTierOccupancy(ctx, h.db)
	if err != nil {
		return AuditCapacityQueryResponse{}, err
	}
	response.TiersChecked = len(occupancy)
	for _, row := range occupancy {
		if _, remErr := h.ledger.Remaining(row.tier, row.occupied); collect(remErr) != nil {
			return AuditCapacityQueryResponse{}, remErr
		}
	}

	orphans, err := h.orphanBoxes(ctx)
	if err != nil {
		return AuditCapacityQueryResponse{}, err
	}
	response.Faults = append(response.Faults, orphans...)

	checked := make(map[string]struct{})
	for _, size := range storage.AllSizes() {
		loads, loadErr := readFacilityLoads(ctx, h.db, size)
		if loadErr != nil {
			return AuditCapacityQueryResponse{}, loadErr
		}
		for _, load := range loads {
			checked[load.Facility.Name()] = struct{}{}
			if _, remErr := h.directory.RemainingAtFacility(load, size); collect(remErr) != nil {
				return AuditCapacityQueryResponse{}, remErr
			}
		}
	}
	response.FacilitiesChecked = len(checked)

	return response, nil
}

// orphanBoxes reports boxes whose size has no capacity row. Such a tier has
// an implicit capacity of zero.
func (h AuditCapacityQueryHandler) orphanBoxes(ctx context.Context) ([]*services.ConsistencyFaultError, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.size,
			COUNT(*)
		FROM boxes b
		LEFT JOIN storage_tiers t ON t.size = b.size
		WHERE t.size IS NULL
		GROUP BY b.size
		ORDER BY b.size
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faults []*services.ConsistencyFaultError
	for rows.Next() {
		var size, count int
		if err = rows.Scan(&size, &count); err != nil {
			return nil, err
		}
		subject := fmt.Sprintf("orphan %s boxes", storage.Size(size))
		faults = append(faults, services.NewConsistencyFaultError(subject, 0, count))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return faults, nil
}
