// Package facilityrepo persists partner overflow facilities.
package facilityrepo

import (
	"fmt"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/storage"
)

// FacilityDTO stores one facility per row with a slot column pair per size.
type FacilityDTO struct {
	Name   string  `gorm:"type:varchar(255);primaryKey"`
	Small  SlotDTO `gorm:"embedded;embeddedPrefix:small_"`
	Medium SlotDTO `gorm:"embedded;embeddedPrefix:medium_"`
	Large  SlotDTO `gorm:"embedded;embeddedPrefix:large_"`
}

func (FacilityDTO) TableName() string {
	return "facilities"
}

// SlotDTO is the (capacity, space_left) pair of one size.
type SlotDTO struct {
	Capacity  int `gorm:"type:int;not null;default:0"`
	SpaceLeft int `gorm:"type:int;not null;default:0"`
}

func fromDomain(f *facility.Facility) (FacilityDTO, error) {
	dto := FacilityDTO{Name: f.Name()}
	for _, size := range storage.AllSizes() {
		slot, err := f.Slot(size)
		if err != nil {
			return FacilityDTO{}, err
		}
		*dto.slot(size) = SlotDTO{
			Capacity:  slot.Capacity(),
			SpaceLeft: slot.SpaceLeft(),
		}
	}
	return dto, nil
}

func toDomain(dto FacilityDTO) (*facility.Facility, error) {
	slots := make(map[storage.Size]facility.Slot, len(storage.AllSizes()))
	for _, size := range storage.AllSizes() {
		raw := dto.slot(size)
		slot, err := facility.NewSlot(raw.Capacity, raw.SpaceLeft)
		if err != nil {
			return nil, fmt.Errorf("facility %s %s slot: %w", dto.Name, size, err)
		}
		slots[size] = slot
	}
	return facility.NewFacility(dto.Name, slots)
}

func (dto *FacilityDTO) slot(size storage.Size) *SlotDTO {
	switch size {
	case storage.Medium:
		return &dto.Medium
	case storage.Large:
		return &dto.Large
	default:
		return &dto.Small
	}
}
