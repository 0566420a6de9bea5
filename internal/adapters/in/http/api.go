package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BoxSize is the wire name of a box size.
type BoxSize string

const (
	BoxSizeSmall  BoxSize = "Small"
	BoxSizeMedium BoxSize = "Medium"
	BoxSizeLarge  BoxSize = "Large"
)

// Placement kinds as they appear in responses.
const (
	PlacementLocal    = "local"
	PlacementOverflow = "overflow"
	PlacementRejected = "rejected"
)

type NewCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// BoxRequest is the body of both store and retrieve.
type BoxRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Size      BoxSize `json:"size"`
}

type Placement struct {
	Placement     string              `json:"placement"`
	BoxId         *openapi_types.UUID `json:"boxId,omitempty"` //nolint:revive // matches the document
	Facility      *string             `json:"facility,omitempty"`
	ReservationId *openapi_types.UUID `json:"reservationId,omitempty"` //nolint:revive // matches the document
}

type RetrieveResult struct {
	Retrieved bool `json:"retrieved"`
}

type NewHold struct {
	Size BoxSize `json:"size"`
}

type Hold struct {
	ReservationId openapi_types.UUID `json:"reservationId"` //nolint:revive // matches the document
	Facility      string             `json:"facility"`
	Size          BoxSize            `json:"size"`
}

// Availability maps a size or facility name to remaining slots.
type Availability map[string]int

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServerInterface lists one method per operation of api/openapi.yml.
type ServerInterface interface {
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (POST /api/v1/boxes)
	StoreBox(ctx echo.Context) error
	// (POST /api/v1/boxes/retrieve)
	RetrieveBox(ctx echo.Context) error
	// (GET /api/v1/availability)
	GetAvailability(ctx echo.Context) error
	// (GET /api/v1/overflow/{size})
	GetOverflowAvailability(ctx echo.Context, size BoxSize) error
	// (POST /api/v1/facilities/{name}/holds)
	HoldOpenSlot(ctx echo.Context, name string) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) StoreBox(ctx echo.Context) error {
	return w.Handler.StoreBox(ctx)
}

func (w *ServerInterfaceWrapper) RetrieveBox(ctx echo.Context) error {
	return w.Handler.RetrieveBox(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailability(ctx echo.Context) error {
	return w.Handler.GetAvailability(ctx)
}

func (w *ServerInterfaceWrapper) GetOverflowAvailability(ctx echo.Context) error {
	var size BoxSize

	err := runtime.BindStyledParameterWithOptions("simple", "size", ctx.Param("size"), &size,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter size: "+err.Error())
	}

	return w.Handler.GetOverflowAvailability(ctx, size)
}

func (w *ServerInterfaceWrapper) HoldOpenSlot(ctx echo.Context) error {
	var name string

	err := runtime.BindStyledParameterWithOptions("simple", "name", ctx.Param("name"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter name: "+err.Error())
	}

	return w.Handler.HoldOpenSlot(ctx, name)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/customers", w.CreateCustomer)
	router.POST("/api/v1/boxes", w.StoreBox)
	router.POST("/api/v1/boxes/retrieve", w.RetrieveBox)
	router.GET("/api/v1/availability", w.GetAvailability)
	router.GET("/api/v1/overflow/:size", w.GetOverflowAvailability)
	router.POST("/api/v1/facilities/:name/holds", w.HoldOpenSlot)
	router.GET("/health", w.GetHealth)
}
