package postgres

import (
	"fmt"

	"frontdesk/internal/adapters/out/postgres/customerrepo"
	"frontdesk/internal/adapters/out/postgres/facilityrepo"
	"frontdesk/internal/adapters/out/postgres/reservationrepo"
	"frontdesk/internal/adapters/out/postgres/storagerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&storagerepo.TierDTO{},
		&storagerepo.BoxDTO{},
		&facilityrepo.FacilityDTO{},
		&reservationrepo.ReservationDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Tables lists the tables Migrate manages, in an order safe for TRUNCATE.
func Tables() []string {
	return []string{"reservations", "facilities", "boxes", "storage_tiers", "customers"}
}
