package reservation

import (
	"errors"
	"strings"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var (
	ErrFacilityNameIsRequired      = errs.NewValueIsRequiredError("facilityName")
	ErrReservationIsNotConstructed = errors.New(
		"Reservation must be created via NewReservation or NewOpenHold constructor",
	)
)

// Reservation is a claim on one slot of a facility for one box size.
type Reservation struct {
	id           kernel.UUID
	facilityName string
	size         storage.Size
	customerID   *kernel.UUID
	guard        guard.ConstructorGuard
}

// NewReservation creates a reservation bound to customerID.
func NewReservation(id kernel.UUID, facilityName string, size storage.Size, customerID kernel.UUID) (*Reservation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return Restore(id, facilityName, size, &customerID)
}

// NewOpenHold creates a reservation without a customer.
func NewOpenHold(id kernel.UUID, facilityName string, size storage.Size) (*Reservation, error) {
	return Restore(id, facilityName, size, nil)
}

// Restore rebuilds a reservation from storage; a nil customerID means an open hold.
func Restore(id kernel.UUID, facilityName string, size storage.Size, customerID *kernel.UUID) (*Reservation, error) {
	r := &Reservation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setFacilityName(facilityName),
		r.setSize(size),
		r.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reservation) Validate() error {
	if r == nil {
		return ErrReservationIsNotConstructed
	}
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

func (r *Reservation) ID() kernel.UUID {
	return r.id
}

func (r *Reservation) FacilityName() string {
	return r.facilityName
}

func (r *Reservation) Size() storage.Size {
	return r.size
}

// CustomerID is nil for open holds.
func (r *Reservation) CustomerID() *kernel.UUID {
	if r.customerID == nil {
		return nil
	}
	id := *r.customerID
	return &id
}

func (r *Reservation) IsOpen() bool {
	return r.customerID == nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setFacilityName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrFacilityNameIsRequired
	}
	r.facilityName = name
	return nil
}

func (r *Reservation) setSize(size storage.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	r.size = size
	return nil
}

func (r *Reservation) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	id := *customerID
	r.customerID = &id
	return nil
}
