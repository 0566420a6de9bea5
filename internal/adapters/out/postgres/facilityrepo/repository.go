package facilityrepo

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFacilityRepository implements ports.FacilityRepository using GORM.
// It never updates a facility row; rows are only locked and read.
type GormFacilityRepository struct {
	db *gorm.DB
}

// NewGormFacilityRepository binds the repository to db, usually a transaction.
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// Add inserts the facility unless one with the same name exists.
func (r *GormFacilityRepository) Add(ctx context.Context, aggregate *facility.Facility) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

func (r *GormFacilityRepository) GetForUpdate(ctx context.Context, name string) (*facility.Facility, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, facility.ErrNameIsRequired
	}

	var dto FacilityDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("facility", name)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// ListForUpdate locks rows in name order, the same order every store request
// uses, so concurrent requests cannot deadlock on them.
func (r *GormFacilityRepository) ListForUpdate(ctx context.Context) ([]*facility.Facility, error) {
	var dtos []FacilityDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	facilities := make([]*facility.Facility, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}

	return facilities, nil
}
