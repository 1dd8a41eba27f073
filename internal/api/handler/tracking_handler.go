package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/ports"
)

// TrackingHandler serves the public tracking lookup. It requires no
// authentication and exposes only the reduced tracking view.
type TrackingHandler struct {
	service ports.BookingService
}

func NewTrackingHandler(service ports.BookingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /v1/track/:tracking_number.
//
// @Summary      Track a parcel by tracking number
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. K7Q2M9XA41)"
// @Success      200              {object}  trackingResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/track/{tracking_number} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	info, err := h.service.Track(c.Request().Context(), c.Param("tracking_number"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTrackingResponse(info))
}
