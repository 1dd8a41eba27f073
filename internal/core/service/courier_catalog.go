package service

import (
	"context"

	"github.com/transpoease/booking-system/internal/core/ports"
)

// StaticCourierCatalog serves a fixed set of courier options. It stands in
// for the external recommendation collaborator, which annotates these same
// options with contextual advice.
type StaticCourierCatalog struct{}

func NewStaticCourierCatalog() *StaticCourierCatalog {
	return &StaticCourierCatalog{}
}

func (StaticCourierCatalog) Options(_ context.Context) []ports.CourierOption {
	return []ports.CourierOption{
		{Name: "Speedy Courier", DeliveryTimeDays: 2, CostUSD: 25.50},
		{Name: "Reliable Delivery", DeliveryTimeDays: 5, CostUSD: 15.00},
	}
}
