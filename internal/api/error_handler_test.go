package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/core/domain"
)

func recordError(t *testing.T, method, path string, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	e.HTTPErrorHandler(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest, domain.ErrValidation.Error()},
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound, "booking not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity, domain.ErrInvalidTransition.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound, "customer not found"},
		{"customer exists", domain.ErrCustomerExists, http.StatusConflict, "customer already exists"},
		{"tracking exhausted", domain.ErrTrackingRetriesExhausted, http.StatusServiceUnavailable, "could not allocate a tracking number, try again"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := recordError(t, http.MethodGet, "/v1/bookings", tc.err)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tc.wantMsg {
				t.Errorf("error = %q, want %q", body.Error, tc.wantMsg)
			}
		})
	}
}

// Failed logins answer 401 regardless of whether the email exists; the
// customer-not-found mapping stays reserved for genuine resource reads.
func TestHTTPErrorHandler_LoginFailuresAreUnauthorized(t *testing.T) {
	rec := recordError(t, http.MethodPost, "/auth/login", domain.ErrInvalidCredentials)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Errorf("body = %q, want invalid credentials message", rec.Body.String())
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec := recordError(t, http.MethodGet, "/v1/bookings", errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %q, want generic internal error message", rec.Body.String())
	}
}
