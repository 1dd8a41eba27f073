// Package pricing computes booking prices and estimated delivery dates.
//
// The model is deliberately simple: a base price per package type plus a
// linear weight surcharge, and a fixed calendar-day offset per package type.
// Both are computed once at booking creation and never revised.
package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/transpoease/booking-system/internal/core/domain"
)

var ErrNonPositiveWeight = errors.New("weight must be greater than zero")

// weightRatePerKg is the linear surcharge added per kilogram.
const weightRatePerKg = 2.0

const (
	defaultBasePrice  = 10.0
	defaultOffsetDays = 3
)

var basePrices = map[domain.PackageType]float64{
	domain.PackageStandard: 10,
	domain.PackageExpress:  25,
	domain.PackageFragile:  20,
	domain.PackageLarge:    15,
}

var deliveryOffsetDays = map[domain.PackageType]int{
	domain.PackageStandard: 3,
	domain.PackageExpress:  1,
	domain.PackageFragile:  4,
	domain.PackageLarge:    5,
}

// Price returns the USD price for shipping a package of the given type and
// weight: basePrice(type) + weightKg * 2. Unknown package types fall back to
// the standard base price. The result keeps full float precision; apply
// Round2 only for display.
func Price(t domain.PackageType, weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, ErrNonPositiveWeight
	}
	base, ok := basePrices[t]
	if !ok {
		base = defaultBasePrice
	}
	return base + weightKg*weightRatePerKg, nil
}

// EstimatedDeliveryDate returns the reference date advanced by the package
// type's delivery offset in calendar days. Unknown types get the standard
// 3-day offset. No business-day or timezone logic is applied.
func EstimatedDeliveryDate(t domain.PackageType, from time.Time) time.Time {
	days, ok := deliveryOffsetDays[t]
	if !ok {
		days = defaultOffsetDays
	}
	return from.AddDate(0, 0, days)
}

// Round2 rounds a price to two decimals for currency display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
