package http

import (
	"context"
	"errors"
	"net/http"

	"frontdesk/internal/core/application/usecases/commands"
	"frontdesk/internal/core/application/usecases/queries"
	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"
	"frontdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CustomerCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	BoxStorer interface {
		Handle(ctx context.Context, cmd commands.StoreBoxCommand) (services.Placement, error)
	}
	BoxRetriever interface {
		Handle(ctx context.Context, cmd commands.RetrieveBoxCommand) (bool, error)
	}
	SlotHolder interface {
		Handle(ctx context.Context, cmd commands.HoldOpenSlotCommand) (*reservation.Reservation, error)
	}
	AvailabilityReader interface {
		Handle(ctx context.Context, query queries.GetAvailabilityQuery) (map[storage.Size]int, error)
	}
	OverflowAvailabilityReader interface {
		Handle(ctx context.Context, query queries.GetOverflowAvailabilityQuery) (map[string]int, error)
	}
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler CustomerCreator
	storeBoxHandler       BoxStorer
	retrieveBoxHandler    BoxRetriever
	holdOpenSlotHandler   SlotHolder

	// Query handlers
	getAvailabilityHandler         AvailabilityReader
	getOverflowAvailabilityHandler OverflowAvailabilityReader
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a server over the command and query handlers.
func NewServer(
	createCustomerHandler CustomerCreator,
	storeBoxHandler BoxStorer,
	retrieveBoxHandler BoxRetriever,
	holdOpenSlotHandler SlotHolder,
	getAvailabilityHandler AvailabilityReader,
	getOverflowAvailabilityHandler OverflowAvailabilityReader,
) *Server {
	return &Server{
		createCustomerHandler:          createCustomerHandler,
		storeBoxHandler:                storeBoxHandler,
		retrieveBoxHandler:             retrieveBoxHandler,
		holdOpenSlotHandler:            holdOpenSlotHandler,
		getAvailabilityHandler:         getAvailabilityHandler,
		getOverflowAvailabilityHandler: getOverflowAvailabilityHandler,
	}
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.FirstName, body.LastName, body.Phone)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer data: "+err.Error())
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, customer.ErrCustomerAlreadyExists) {
			return errorJSON(ctx, http.StatusConflict, "Customer already exists")
		}
		return internalError(ctx, err, "Failed to create customer")
	}

	return ctx.NoContent(http.StatusCreated)
}

// StoreBox handles POST /api/v1/boxes. A rejected placement is a normal
// outcome and answers 200 rather than an error status.
func (s *Server) StoreBox(ctx echo.Context) error {
	var body BoxRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	size, err := storage.ParseSize(string(body.Size))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewStoreBoxCommand(body.FirstName, body.LastName, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid box request: "+err.Error())
	}

	placement, err := s.storeBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Customer not found")
		}
		return internalError(ctx, err, "Failed to store box")
	}

	switch placement.Kind {
	case services.PlacementLocal:
		boxID := placement.Box.ID().Bytes()
		return ctx.JSON(http.StatusCreated, Placement{Placement: PlacementLocal, BoxId: &boxID})
	case services.PlacementOverflow:
		reservationID := placement.Reservation.ID().Bytes()
		facilityName := placement.FacilityName()
		return ctx.JSON(http.StatusCreated, Placement{
			Placement:     PlacementOverflow,
			Facility:      &facilityName,
			ReservationId: &reservationID,
		})
	default:
		return ctx.JSON(http.StatusOK, Placement{Placement: PlacementRejected})
	}
}

// RetrieveBox handles POST /api/v1/boxes/retrieve.
func (s *Server) RetrieveBox(ctx echo.Context) error {
	var body BoxRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	size, err := storage.ParseSize(string(body.Size))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRetrieveBoxCommand(body.FirstName, body.LastName, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid box request: "+err.Error())
	}

	retrieved, err := s.retrieveBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Customer not found")
		}
		return internalError(ctx, err, "Failed to retrieve box")
	}

	return ctx.JSON(http.StatusOK, RetrieveResult{Retrieved: retrieved})
}

// GetAvailability handles GET /api/v1/availability.
func (s *Server) GetAvailability(ctx echo.Context) error {
	free, err := s.getAvailabilityHandler.Handle(ctx.Request().Context(), queries.NewGetAvailabilityQuery())
	if err != nil {
		return internalError(ctx, err, "Failed to read availability")
	}

	response := make(Availability, len(free))
	for size, n := range free {
		response[size.String()] = n
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOverflowAvailability handles GET /api/v1/overflow/{size}.
func (s *Server) GetOverflowAvailability(ctx echo.Context, size BoxSize) error {
	parsed, err := storage.ParseSize(string(size))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOverflowAvailabilityQuery(parsed)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	remaining, err := s.getOverflowAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err, "Failed to read overflow availability")
	}

	return ctx.JSON(http.StatusOK, Availability(remaining))
}

// HoldOpenSlot handles POST /api/v1/facilities/{name}/holds.
func (s *Server) HoldOpenSlot(ctx echo.Context, name string) error {
	var body NewHold
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	size, err := storage.ParseSize(string(body.Size))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewHoldOpenSlotCommand(name, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid hold request: "+err.Error())
	}

	hold, err := s.holdOpenSlotHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Facility not found")
	case errors.Is(err, services.ErrFacilitySaturated):
		return errorJSON(ctx, http.StatusConflict, "Facility has no space left for "+size.String()+" boxes")
	case err != nil:
		return internalError(ctx, err, "Failed to hold slot")
	}

	return ctx.JSON(http.StatusCreated, Hold{
		ReservationId: hold.ID().Bytes(),
		Facility:      hold.FacilityName(),
		Size:          BoxSize(hold.Size().String()),
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// internalError answers 500 and keeps the cause on the context so the
// request logger can record it.
func internalError(ctx echo.Context, cause error, message string) error {
	ctx.Set(causeKey, cause)
	return errorJSON(ctx, http.StatusInternalServerError, message)
}

const causeKey = "frontdesk.cause"
