// Package reservationrepo persists overflow reservations and open holds.
package reservationrepo

import (
	"time"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"

	"github.com/google/uuid"
)

// ReservationDTO is one reservations row. A NULL customer_id marks an open hold.
type ReservationDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FacilityName string     `gorm:"type:varchar(255);not null;index:idx_reservations_facility_size"`
	Size         int        `gorm:"type:smallint;not null;index:idx_reservations_facility_size"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
}

func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(r *reservation.Reservation) ReservationDTO {
	var customerID *uuid.UUID
	if id := r.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return ReservationDTO{
		ID:           r.ID().Bytes(),
		FacilityName: r.FacilityName(),
		Size:         int(r.Size()),
		CustomerID:   customerID,
	}
}

func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID = &cID
	}

	return reservation.Restore(id, dto.FacilityName, storage.Size(dto.Size), customerID)
}
