package reservationrepo

import (
	"context"
	"errors"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ports.ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository binds the repository to db, usually a transaction.
// tracker records every reservation written.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReservationRepository) Add(ctx context.Context, aggregate *reservation.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get reads one reservation. Used by tests and diagnostics; the engine itself
// only counts reservations.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	var dto ReservationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("reservation", id.String())
	}
	if err != nil {
		return nil, err
	}
	return toDomain(dto)
}

type tallyRow struct {
	FacilityName string
	OpenCount    int
	BoundCount   int
}

const tallyColumns = `
	facility_name,
	COUNT(*) FILTER (WHERE customer_id IS NULL)     AS open_count,
	COUNT(*) FILTER (WHERE customer_id IS NOT NULL) AS bound_count`

func (r *GormReservationRepository) Tally(
	ctx context.Context,
	facilityName string,
	size storage.Size,
) (reservation.Tally, error) {
	var rows []tallyRow
	if err := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Select(tallyColumns).
		Where("facility_name = ? AND size = ?", facilityName, int(size)).
		Group("facility_name").
		Scan(&rows).Error; err != nil {
		return reservation.Tally{}, err
	}

	if len(rows) == 0 {
		return reservation.Tally{}, nil
	}
	return reservation.Tally{Open: rows[0].OpenCount, Bound: rows[0].BoundCount}, nil
}

func (r *GormReservationRepository) TallyBySize(
	ctx context.Context,
	size storage.Size,
) (map[string]reservation.Tally, error) {
	var rows []tallyRow
	if err := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Select(tallyColumns).
		Where("size = ?", int(size)).
		Group("facility_name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	tallies := make(map[string]reservation.Tally, len(rows))
	for _, row := range rows {
		tallies[row.FacilityName] = reservation.Tally{Open: row.OpenCount, Bound: row.BoundCount}
	}
	return tallies, nil
}
