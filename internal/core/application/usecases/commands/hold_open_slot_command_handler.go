package commands

import (
	"context"

	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/services"
)

// HoldOpenSlotCommandHandler books open holds at a named facility.
type HoldOpenSlotCommandHandler struct {
	uowFactory OverflowUoWFactory
	directory  services.OverflowDirectory
}

// NewHoldOpenSlotCommandHandler creates the handler over an OverflowUoWFactory.
func NewHoldOpenSlotCommandHandler(uowFactory OverflowUoWFactory) HoldOpenSlotCommandHandler {
	return HoldOpenSlotCommandHandler{
		uowFactory: uowFactory,
		directory:  services.NewOverflowDirectory(),
	}
}

// Handle locks the facility row, checks derived availability and stores the hold.
// Fails with services.ErrFacilitySaturated when nothing is left and with an error
// wrapping errs.ErrObjectNotFound for an unknown facility.
func (h HoldOpenSlotCommandHandler) Handle(
	ctx context.Context,
	cmd HoldOpenSlotCommand,
) (*reservation.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.FacilityRepository().GetForUpdate(ctx, cmd.FacilityName())
	if err != nil {
		return nil, err
	}

	tally, err := uow.ReservationRepository().Tally(ctx, target.Name(), cmd.Size())
	if err != nil {
		return nil, err
	}

	hold, err := h.directory.HoldOpenSlot(services.FacilityLoad{
		Facility:     target,
		Reservations: tally,
	}, cmd.Size())
	if err != nil {
		return nil, err
	}

	if err = uow.ReservationRepository().Add(ctx, hold); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return hold, nil
}
