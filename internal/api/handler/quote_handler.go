package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/pricing"
	"github.com/transpoease/booking-system/internal/core/ports"
)

// QuoteHandler serves public price previews and the courier options shown on
// the booking form. Quotes are display-only; the binding price is computed
// when the booking is created.
type QuoteHandler struct {
	couriers ports.CourierCatalog
}

func NewQuoteHandler(couriers ports.CourierCatalog) *QuoteHandler {
	return &QuoteHandler{couriers: couriers}
}

// Quote handles GET /v1/quote.
//
// @Summary      Preview price and delivery date for a package
// @Tags         quotes
// @Produce      json
// @Param        package_type  query     string   false  "Package type (default standard)"
// @Param        weight_kg     query     number   true   "Weight in kilograms"
// @Success      200           {object}  quoteResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/quote [get]
func (h *QuoteHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	packageType := req.PackageType
	if packageType == "" {
		packageType = string(domain.PackageStandard)
	}

	price, err := pricing.Price(domain.PackageType(packageType), req.WeightKg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, quoteResponse{
		PackageType:       packageType,
		WeightKg:          req.WeightKg,
		Price:             pricing.Round2(price),
		EstimatedDelivery: pricing.EstimatedDeliveryDate(domain.PackageType(packageType), time.Now().UTC()),
	})
}

// CourierOptions handles GET /v1/couriers/options.
//
// @Summary      List third-party courier options
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  courierOptionsResponse
// @Router       /v1/couriers/options [get]
func (h *QuoteHandler) CourierOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, courierOptionsResponse{
		Options: h.couriers.Options(c.Request().Context()),
	})
}
