package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - customer role requires a non-empty customer_id; without it the JWT is
//     structurally valid but operationally unusable — reject with 401.
func ctxClaims(c echo.Context) (role, customerID string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	customerID, _ = c.Get("customer_id").(string)
	if role == domain.RoleCustomer && customerID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing customer identity")
	}

	return role, customerID, nil
}
