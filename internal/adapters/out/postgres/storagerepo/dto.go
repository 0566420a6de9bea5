// Package storagerepo persists local tier capacities and the boxes that occupy them.
package storagerepo

import (
	"time"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"

	"github.com/google/uuid"
)

// TierDTO is one storage_tiers row. SizeName is informational; Size is the key.
type TierDTO struct {
	Size     int    `gorm:"type:smallint;primaryKey;autoIncrement:false"`
	SizeName string `gorm:"type:varchar(16);not null"`
	Capacity int    `gorm:"type:int;not null"`
}

func (TierDTO) TableName() string {
	return "storage_tiers"
}

// BoxDTO is one occupied local slot.
type BoxDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Size       int       `gorm:"type:smallint;not null;index:idx_boxes_size_customer"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_boxes_size_customer"`
	CreatedAt  time.Time
}

func (BoxDTO) TableName() string {
	return "boxes"
}

func tierFromDomain(tier storage.Tier) TierDTO {
	return TierDTO{
		Size:     int(tier.Size()),
		SizeName: tier.Size().String(),
		Capacity: tier.Capacity(),
	}
}

func tierToDomain(dto TierDTO) (storage.Tier, error) {
	return storage.NewTier(storage.Size(dto.Size), dto.Capacity)
}

func boxFromDomain(box *storage.Box) BoxDTO {
	return BoxDTO{
		ID:         box.ID().Bytes(),
		Size:       int(box.Size()),
		CustomerID: box.CustomerID().Bytes(),
	}
}

func boxToDomain(dto BoxDTO) (*storage.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return storage.NewBox(id, storage.Size(dto.Size), customerID)
}
