package services

import (
	"errors"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
)

// PlacementKind is the terminal state of a store request.
type PlacementKind int

const (
	PlacementRejected PlacementKind = iota
	PlacementLocal
	PlacementOverflow
)

func (k PlacementKind) String() string {
	switch k {
	case PlacementLocal:
		return "local"
	case PlacementOverflow:
		return "overflow"
	default:
		return "rejected"
	}
}

// Placement is the outcome of AllocationEngine.Store. Exactly one of Box and
// Reservation is set for a successful placement; neither is set when rejected.
type Placement struct {
	Kind        PlacementKind
	Box         *storage.Box
	Reservation *reservation.Reservation
}

// FacilityName is empty unless the placement went to overflow.
func (p Placement) FacilityName() string {
	if p.Reservation == nil {
		return ""
	}
	return p.Reservation.FacilityName()
}

type (
	// CustomerResolver looks up the requesting customer. It is called only once a
	// slot has been found, and must fail with an error wrapping errs.ErrObjectNotFound
	// when the customer is unknown.
	CustomerResolver func() (*customer.Customer, error)

	// OverflowLoader loads the facility loads for the requested size. It is called
	// only when local capacity is exhausted.
	OverflowLoader func() ([]FacilityLoad, error)
)

// StoreRequest carries the state a store decision needs. Tier and Occupied
// must be read under the tier's row lock; the loader must lock facility rows.
type StoreRequest struct {
	Tier            storage.Tier
	Occupied        int
	ResolveCustomer CustomerResolver
	LoadOverflow    OverflowLoader
}

// AllocationEngine runs the store state machine:
//
//	LocalCheck    remaining(tier) > 0        -> resolve customer -> Placed(Local)
//	OverflowCheck pickFacility(size) != none -> resolve customer -> Placed(Overflow)
//	Saturated                                -> Rejected
//
// Rejected is a normal outcome and is returned without error. Nothing is
// persisted here; the caller stores the Box or Reservation of the placement.
type AllocationEngine struct {
	ledger    CapacityLedger
	directory OverflowDirectory
}

// NewAllocationEngine creates the engine with its ledger and directory.
//
// Example:
//
//	engine := services.NewAllocationEngine()
//	placement, err := engine.Store(services.StoreRequest{
//	    Tier:            tier,
//	    Occupied:        occupied,
//	    ResolveCustomer: resolve,
//	    LoadOverflow:    loadFacilities,
//	})
func NewAllocationEngine() AllocationEngine {
	return AllocationEngine{
		ledger:    NewCapacityLedger(),
		directory: NewOverflowDirectory(),
	}
}

// Store decides where a box of req.Tier's size goes.
func (e AllocationEngine) Store(req StoreRequest) (Placement, error) {
	remaining, err := e.ledger.Remaining(req.Tier, req.Occupied)
	if err != nil {
		return Placement{}, err
	}

	if remaining > 0 {
		owner, err := req.ResolveCustomer()
		if err != nil {
			return Placement{}, err
		}
		box, err := e.ledger.Occupy(req.Tier, req.Occupied, owner.ID())
		if err != nil {
			return Placement{}, err
		}
		return Placement{Kind: PlacementLocal, Box: box}, nil
	}

	loads, err := req.LoadOverflow()
	if err != nil {
		return Placement{}, err
	}

	size := req.Tier.Size()
	chosen, err := e.directory.pickLoad(loads, size)
	if errors.Is(err, ErrNoFacilityAvailable) {
		return Placement{Kind: PlacementRejected}, nil
	}
	if err != nil {
		return Placement{}, err
	}

	owner, err := req.ResolveCustomer()
	if err != nil {
		return Placement{}, err
	}

	booked, err := e.directory.Reserve(chosen, size, owner.ID())
	if err != nil {
		return Placement{}, err
	}

	return Placement{Kind: PlacementOverflow, Reservation: booked}, nil
}
