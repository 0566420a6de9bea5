package storagerepo

import (
	"context"
	"errors"

	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTierRepository implements ports.StorageRepository using GORM.
type GormTierRepository struct {
	db *gorm.DB
}

// NewGormTierRepository binds the repository to db. GetTierForUpdate only
// holds its lock when db is a transaction.
func NewGormTierRepository(db *gorm.DB) *GormTierRepository {
	return &GormTierRepository{db: db}
}

// AddTier inserts the tier; an existing row for the size is left untouched.
func (r *GormTierRepository) AddTier(ctx context.Context, tier storage.Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	dto := tierFromDomain(tier)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// GetTierForUpdate reads the tier with SELECT ... FOR UPDATE.
func (r *GormTierRepository) GetTierForUpdate(ctx context.Context, size storage.Size) (storage.Tier, error) {
	if err := size.Validate(); err != nil {
		return storage.Tier{}, err
	}

	var dto TierDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "size = ?", int(size)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.Tier{}, errs.NewObjectNotFoundError("tier", size.String())
	}
	if err != nil {
		return storage.Tier{}, err
	}

	return tierToDomain(dto)
}
