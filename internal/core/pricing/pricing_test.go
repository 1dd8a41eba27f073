package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/transpoease/booking-system/internal/core/domain"
)

func TestPrice_BasePlusWeightSurcharge(t *testing.T) {
	cases := []struct {
		packageType domain.PackageType
		weightKg    float64
		want        float64
	}{
		{domain.PackageStandard, 1, 12},
		{domain.PackageStandard, 10, 30},
		{domain.PackageExpress, 2, 29},
		{domain.PackageFragile, 0.5, 21},
		{domain.PackageLarge, 3, 21},
		{domain.PackageType("unknown"), 1, 12}, // falls back to standard base
	}

	for _, tc := range cases {
		got, err := Price(tc.packageType, tc.weightKg)
		if err != nil {
			t.Fatalf("Price(%s, %v): unexpected error: %v", tc.packageType, tc.weightKg, err)
		}
		if got != tc.want {
			t.Errorf("Price(%s, %v) = %v, want %v", tc.packageType, tc.weightKg, got, tc.want)
		}
	}
}

func TestPrice_RejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1, -0.001} {
		if _, err := Price(domain.PackageStandard, w); !errors.Is(err, ErrNonPositiveWeight) {
			t.Errorf("Price(standard, %v): expected ErrNonPositiveWeight, got %v", w, err)
		}
	}
}

func TestEstimatedDeliveryDate_OffsetsByType(t *testing.T) {
	ref := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		packageType domain.PackageType
		wantDays    int
	}{
		{domain.PackageStandard, 3},
		{domain.PackageExpress, 1},
		{domain.PackageFragile, 4},
		{domain.PackageLarge, 5},
		{domain.PackageType("drone"), 3}, // default case
	}

	for _, tc := range cases {
		got := EstimatedDeliveryDate(tc.packageType, ref)
		want := ref.AddDate(0, 0, tc.wantDays)
		if !got.Equal(want) {
			t.Errorf("EstimatedDeliveryDate(%s) = %v, want %v", tc.packageType, got, want)
		}
	}
}

func TestEstimatedDeliveryDate_CrossesMonthBoundary(t *testing.T) {
	ref := time.Date(2026, time.January, 30, 12, 0, 0, 0, time.UTC)
	got := EstimatedDeliveryDate(domain.PackageLarge, ref)
	want := time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EstimatedDeliveryDate(large) = %v, want %v", got, want)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{12.344, 12.34},
		{12.346, 12.35},
		{29, 29},
		{7.999, 8},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
