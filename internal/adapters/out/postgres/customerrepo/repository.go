package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository binds the repository to db, usually a transaction.
// tracker records every customer written.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the customer. A unique violation on the name pair is reported as
// customer.ErrCustomerAlreadyExists; every other failure is returned wrapped.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", customer.ErrCustomerAlreadyExists, aggregate.Name())
		}
		return fmt.Errorf("add customer %s: %w", aggregate.Name(), err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) GetByName(ctx context.Context, name customer.Name) (*customer.Customer, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", name.First(), name.Last()).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("customer", name.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
