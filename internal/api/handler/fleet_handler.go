package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/ports"
)

// FleetHandler serves the admin fleet-management endpoints. The operations
// are thin CRUD; they go straight to the repositories.
type FleetHandler struct {
	vehicles  ports.VehicleRepository
	routes    ports.RouteRepository
	schedules ports.ScheduleRepository
}

func NewFleetHandler(vehicles ports.VehicleRepository, routes ports.RouteRepository, schedules ports.ScheduleRepository) *FleetHandler {
	return &FleetHandler{vehicles: vehicles, routes: routes, schedules: schedules}
}

type createVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	Type          string `json:"type"           validate:"required"`
	Capacity      int    `json:"capacity"       validate:"required,gt=0"`
	Status        string `json:"status"         validate:"omitempty,oneof=available in_use maintenance out_of_service"`
}

type routeStopRequest struct {
	Name          string `json:"name"           validate:"required"`
	ArrivalTime   string `json:"arrival_time"   validate:"required"`
	DepartureTime string `json:"departure_time" validate:"required"`
}

type createRouteRequest struct {
	Name             string             `json:"name"               validate:"required"`
	StartLocation    string             `json:"start_location"     validate:"required"`
	EndLocation      string             `json:"end_location"       validate:"required"`
	DistanceKm       float64            `json:"distance_km"        validate:"required,gt=0"`
	EstimatedTimeMin int                `json:"estimated_time_min" validate:"required,gt=0"`
	Stops            []routeStopRequest `json:"stops"              validate:"omitempty,dive"`
}

type createScheduleRequest struct {
	RouteID       string    `json:"route_id"       validate:"required"`
	VehicleID     string    `json:"vehicle_id"     validate:"required"`
	DriverName    string    `json:"driver_name"    validate:"required"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time"   validate:"required"`
	Notes         string    `json:"notes"`
}

// ListVehicles handles GET /v1/admin/vehicles.
//
// @Summary      List fleet vehicles (admin)
// @Tags         fleet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Vehicle
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/vehicles [get]
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.vehicles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle handles POST /v1/admin/vehicles.
//
// @Summary      Register a fleet vehicle (admin)
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  domain.Vehicle
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/vehicles [post]
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.VehicleStatus(req.Status)
	if req.Status == "" {
		status = domain.VehicleAvailable
	}

	vehicle := &domain.Vehicle{
		VehicleNumber: req.VehicleNumber,
		Type:          req.Type,
		Capacity:      req.Capacity,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.vehicles.Create(c.Request().Context(), vehicle); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, vehicle)
}

// ListRoutes handles GET /v1/admin/routes.
//
// @Summary      List delivery routes (admin)
// @Tags         fleet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Route
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/routes [get]
func (h *FleetHandler) ListRoutes(c echo.Context) error {
	routes, err := h.routes.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routes)
}

// CreateRoute handles POST /v1/admin/routes.
//
// @Summary      Create a delivery route (admin)
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRouteRequest  true  "Route details"
// @Success      201   {object}  domain.Route
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/routes [post]
func (h *FleetHandler) CreateRoute(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stops := make([]domain.RouteStop, len(req.Stops))
	for i, s := range req.Stops {
		stops[i] = domain.RouteStop{
			Name:          s.Name,
			ArrivalTime:   s.ArrivalTime,
			DepartureTime: s.DepartureTime,
		}
	}

	route := &domain.Route{
		Name:             req.Name,
		StartLocation:    req.StartLocation,
		EndLocation:      req.EndLocation,
		DistanceKm:       req.DistanceKm,
		EstimatedTimeMin: req.EstimatedTimeMin,
		Stops:            stops,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.routes.Create(c.Request().Context(), route); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, route)
}

// ListSchedules handles GET /v1/admin/schedules.
//
// @Summary      List scheduled runs (admin)
// @Tags         fleet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Schedule
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/schedules [get]
func (h *FleetHandler) ListSchedules(c echo.Context) error {
	schedules, err := h.schedules.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedules)
}

// CreateSchedule handles POST /v1/admin/schedules.
//
// @Summary      Schedule a run (admin)
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createScheduleRequest  true  "Schedule details"
// @Success      201   {object}  domain.Schedule
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/schedules [post]
func (h *FleetHandler) CreateSchedule(c echo.Context) error {
	var req createScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.ArrivalTime.After(req.DepartureTime) {
		return echo.NewHTTPError(http.StatusBadRequest, "arrival_time must be after departure_time")
	}

	schedule := &domain.Schedule{
		RouteID:       req.RouteID,
		VehicleID:     req.VehicleID,
		DriverName:    req.DriverName,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Status:        domain.ScheduleScheduled,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.schedules.Create(c.Request().Context(), schedule); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, schedule)
}
