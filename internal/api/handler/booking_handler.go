package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, customerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	detail, err := h.service.CreateBooking(c.Request().Context(), toCreateInput(req, customerID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookingResponse(detail))
}

// ListMine handles GET /v1/bookings, returning the caller's bookings
// newest first.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	_, customerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListCustomerBookings(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingListResponse(items))
}

// Get handles GET /v1/bookings/:tracking_number. Customers only see their
// own bookings; admins see any.
//
// @Summary      Get a booking by tracking number
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "Tracking number"
// @Success      200              {object}  bookingResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/bookings/{tracking_number} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	role, customerID, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if role == domain.RoleAdmin {
		customerID = ""
	}

	detail, err := h.service.GetBooking(c.Request().Context(), c.Param("tracking_number"), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingResponse(detail))
}

// ListAll handles GET /v1/admin/bookings with optional status and
// package_type filters plus page/limit pagination.
//
// @Summary      List all bookings (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status"
// @Param        package_type  query     string  false  "Filter by package type"
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Page size (default 20, max 100)"
// @Success      200           {object}  adminListBookingsResponse
// @Failure      401           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Router       /v1/admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListBookings(c.Request().Context(), ports.ListBookingsInput{
		Status:      c.QueryParam("status"),
		PackageType: c.QueryParam("package_type"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAdminListResponse(result))
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status.
//
// @Summary      Update a booking's status (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		BookingID: c.Param("id"),
		NewStatus: req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingResponse(detail))
}
