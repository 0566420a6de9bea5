package commands

import (
	"context"
	"fmt"

	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"
)

// StoreBoxCommandHandler places a box locally, in overflow, or rejects it.
//
// The whole decision runs in one transaction. The tier row is locked before the
// live boxes are counted, and facility rows are locked before reservations are
// tallied, so two concurrent requests cannot both take the last slot.
type StoreBoxCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AllocationEngine
}

// NewStoreBoxCommandHandler creates the handler. Store may end in a box or a
// reservation, so it needs the full UoW.
//
// Example:
//
//	handler := commands.NewStoreBoxCommandHandler(uowFactory)
//	placement, err := handler.Handle(ctx, cmd)
//	if err == nil && placement.Kind == services.PlacementRejected {
//	    // every tier and facility is full
//	}
func NewStoreBoxCommandHandler(uowFactory UoWFactory) StoreBoxCommandHandler {
	return StoreBoxCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewAllocationEngine(),
	}
}

// Handle returns the placement. A rejected placement comes back with a nil error
// and leaves no trace in storage.
func (h StoreBoxCommandHandler) Handle(ctx context.Context, cmd StoreBoxCommand) (services.Placement, error) {
	if err := cmd.Validate(); err != nil {
		return services.Placement{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Placement{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tier, err := uow.StorageRepository().GetTierForUpdate(ctx, cmd.Size())
	if err != nil {
		return services.Placement{}, err
	}

	occupied, err := uow.BoxRepository().CountBySize(ctx, cmd.Size())
	if err != nil {
		return services.Placement{}, err
	}

	placement, err := h.engine.Store(services.StoreRequest{
		Tier:     tier,
		Occupied: occupied,
		ResolveCustomer: func() (*customer.Customer, error) {
			return resolveCustomer(ctx, uow.CustomerRepository(), cmd.Name())
		},
		LoadOverflow: func() ([]services.FacilityLoad, error) {
			return loadOverflow(ctx, uow, cmd.Size())
		},
	})
	if err != nil {
		return services.Placement{}, err
	}

	switch placement.Kind {
	case services.PlacementLocal:
		err = uow.BoxRepository().Add(ctx, placement.Box)
	case services.PlacementOverflow:
		err = uow.ReservationRepository().Add(ctx, placement.Reservation)
	default:
		return placement, nil
	}
	if err != nil {
		return services.Placement{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Placement{}, err
	}

	return placement, nil
}

// loadOverflow locks every facility row and pairs each with its reservation
// tally for size.
func loadOverflow(
	ctx context.Context,
	repos interface {
		FacilityRepoFactory
		ReservationRepoFactory
	},
	size storage.Size,
) ([]services.FacilityLoad, error) {
	facilities, err := repos.FacilityRepository().ListForUpdate(ctx)
	if err != nil {
		return nil, err
	}
	if len(facilities) == 0 {
		return nil, nil
	}

	tallies, err := repos.ReservationRepository().TallyBySize(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("tally %s reservations: %w", size, err)
	}

	loads := make([]services.FacilityLoad, 0, len(facilities))
	for _, f := range facilities {
		loads = append(loads, services.FacilityLoad{
			Facility:     f,
			Reservations: tallies[f.Name()],
		})
	}
	return loads, nil
}
