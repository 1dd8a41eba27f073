package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/ports"
)

// ContactHandler accepts public contact-form submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /v1/contact. The message is queued for delivery and
// the handler returns before SMTP completes.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      202   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, contactResponse{MessageID: id})
}
