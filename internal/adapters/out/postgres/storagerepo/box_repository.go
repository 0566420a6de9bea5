package storagerepo

import (
	"context"
	"errors"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBoxRepository implements ports.BoxRepository using GORM.
type GormBoxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBoxRepository binds the repository to db, usually a transaction.
// tracker records every box added or removed.
func NewGormBoxRepository(db *gorm.DB, tracker aggregateTracker) *GormBoxRepository {
	return &GormBoxRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBoxRepository) Add(ctx context.Context, box *storage.Box) error {
	if err := box.Validate(); err != nil {
		return err
	}

	dto := boxFromDomain(box)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(box.ID(), box)
	return nil
}

func (r *GormBoxRepository) CountBySize(ctx context.Context, size storage.Size) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Where("size = ?", int(size)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// RemoveOne deletes the oldest matching box. Concurrent retrievals of the same
// customer skip rows another transaction already claimed.
func (r *GormBoxRepository) RemoveOne(ctx context.Context, size storage.Size, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var dto BoxDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("size = ? AND customer_id = ?", int(size), customerID.Bytes()).
		Order("created_at").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	box, err := boxToDomain(dto)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&BoxDTO{}, "id = ?", dto.ID)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(box.ID(), box)
	return true, nil
}
