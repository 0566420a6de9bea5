package services

import (
	"errors"
	"fmt"
	"sort"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
)

var (
	// ErrNoFacilityAvailable means no facility has derived room for the size.
	ErrNoFacilityAvailable = errors.New("no overflow facility available")
	// ErrFacilitySaturated means the chosen facility has no derived room for the size.
	ErrFacilitySaturated = errors.New("overflow facility has no space left")
)

// FacilityLoad is a facility together with the reservations held against it
// for the size being considered.
type FacilityLoad struct {
	Facility     *facility.Facility
	Reservations reservation.Tally
}

// OverflowDirectory computes partner availability. Availability is always
// derived as spaceLeft - open holds - bound reservations, and the same figure
// drives both reporting and selection.
type OverflowDirectory struct{}

// NewOverflowDirectory creates the stateless directory service.
//
// Example:
//
//	directory := services.NewOverflowDirectory()
//	chosen, err := directory.PickFacility(loads, storage.Small)
func NewOverflowDirectory() OverflowDirectory {
	return OverflowDirectory{}
}

// RemainingAtFacility returns the derived availability of load for size.
// A negative value is a ConsistencyFaultError.
func (d OverflowDirectory) RemainingAtFacility(load FacilityLoad, size storage.Size) (int, error) {
	if err := load.Facility.Validate(); err != nil {
		return 0, err
	}

	spaceLeft, err := load.Facility.SpaceLeft(size)
	if err != nil {
		return 0, err
	}

	used := load.Reservations.Total()
	remaining := spaceLeft - used
	if load.Reservations.Open < 0 || load.Reservations.Bound < 0 || remaining < 0 {
		return 0, NewConsistencyFaultError(
			fmt.Sprintf("facility %s %s slots", load.Facility.Name(), size), spaceLeft, used)
	}

	return remaining, nil
}

// PickFacility returns the facility with the lexically smallest name among
// those with derived availability above zero. The input order is irrelevant.
// An overbooked facility is not eligible and does not stop the scan; the
// capacity audit reports it. Returns ErrNoFacilityAvailable when none qualifies.
func (d OverflowDirectory) PickFacility(loads []FacilityLoad, size storage.Size) (*facility.Facility, error) {
	load, err := d.pickLoad(loads, size)
	if err != nil {
		return nil, err
	}
	return load.Facility, nil
}

func (d OverflowDirectory) pickLoad(loads []FacilityLoad, size storage.Size) (FacilityLoad, error) {
	ordered := make([]FacilityLoad, len(loads))
	copy(ordered, loads)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Facility.Name() < ordered[j].Facility.Name()
	})

	for _, load := range ordered {
		remaining, err := d.RemainingAtFacility(load, size)
		if errors.Is(err, ErrConsistencyFault) {
			continue
		}
		if err != nil {
			return FacilityLoad{}, err
		}
		if remaining > 0 {
			return load, nil
		}
	}

	return FacilityLoad{}, ErrNoFacilityAvailable
}

// Availability maps facility name to derived availability for size.
func (d OverflowDirectory) Availability(loads []FacilityLoad, size storage.Size) (map[string]int, error) {
	out := make(map[string]int, len(loads))
	for _, load := range loads {
		remaining, err := d.RemainingAtFacility(load, size)
		if err != nil {
			return nil, err
		}
		out[load.Facility.Name()] = remaining
	}
	return out, nil
}

// Reserve books one slot at load's facility for customerID.
// Returns ErrFacilitySaturated when the derived availability is zero.
func (d OverflowDirectory) Reserve(
	load FacilityLoad,
	size storage.Size,
	customerID kernel.UUID,
) (*reservation.Reservation, error) {
	if err := d.ensureRoom(load, size); err != nil {
		return nil, err
	}
	return reservation.NewReservation(kernel.NewUUID(), load.Facility.Name(), size, customerID)
}

// HoldOpenSlot books one customer-less slot at load's facility.
func (d OverflowDirectory) HoldOpenSlot(load FacilityLoad, size storage.Size) (*reservation.Reservation, error) {
	if err := d.ensureRoom(load, size); err != nil {
		return nil, err
	}
	return reservation.NewOpenHold(kernel.NewUUID(), load.Facility.Name(), size)
}

func (d OverflowDirectory) ensureRoom(load FacilityLoad, size storage.Size) error {
	remaining, err := d.RemainingAtFacility(load, size)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return ErrFacilitySaturated
	}
	return nil
}
