package ports

import "context"

// CourierOption is a third-party courier offer shown on the booking form.
type CourierOption struct {
	Name             string  `json:"name"`
	DeliveryTimeDays int     `json:"delivery_time_days"`
	CostUSD          float64 `json:"cost_usd"`
}

// CourierCatalog is the boundary to the external courier-recommendation
// collaborator. The shipped implementation serves a static catalogue.
type CourierCatalog interface {
	Options(ctx context.Context) []CourierOption
}
