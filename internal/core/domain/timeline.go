package domain

import (
	"slices"
	"time"
)

// StatusEstimated marks the projected-delivery milestone in a timeline. It is
// a display status only and never appears on a stored booking.
const StatusEstimated = "estimated"

// InTransitLocation is the placeholder location shown while a package is
// between the pickup and delivery cities.
const InTransitLocation = "In Transit"

// TimelineEvent is one reconstructed milestone in a booking's delivery
// lifecycle, derived from stored fields rather than logged independently.
type TimelineEvent struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// BuildTimeline reconstructs the display timeline for a booking from its
// stored timestamps and current status, most recent event first.
//
// The reconstruction has no memory of intermediate states: a booking that is
// already delivered yields a single collapsed status event at UpdatedAt, not
// separate picked_up and in_transit rows. That information loss is a known
// property of deriving from snapshots instead of an event log.
func BuildTimeline(b *Booking) []TimelineEvent {
	events := make([]TimelineEvent, 0, 4)

	events = append(events, TimelineEvent{
		Date:        b.CreatedAt,
		Status:      string(StatusPending),
		Description: "Booking received and awaiting pickup",
		Location:    b.PickupAddress.City,
	})

	switch b.Status {
	case StatusPickedUp, StatusInTransit, StatusDelivered:
		location := InTransitLocation
		if b.Status == StatusDelivered {
			location = b.DeliveryAddress.City
		}
		events = append(events, TimelineEvent{
			Date:        b.UpdatedAt,
			Status:      string(b.Status),
			Description: statusDescription(b.Status),
			Location:    location,
		})
	}

	events = append(events, TimelineEvent{
		Date:        b.EstimatedDelivery,
		Status:      StatusEstimated,
		Description: "Estimated delivery",
		Location:    b.DeliveryAddress.City,
	})

	if b.ActualDelivery != nil {
		events = append(events, TimelineEvent{
			Date:        *b.ActualDelivery,
			Status:      string(StatusDelivered),
			Description: "Package delivered",
			Location:    b.DeliveryAddress.City,
		})
	}

	slices.SortStableFunc(events, func(a, b TimelineEvent) int {
		return b.Date.Compare(a.Date)
	})
	return events
}

func statusDescription(s BookingStatus) string {
	switch s {
	case StatusPickedUp:
		return "Package picked up from sender"
	case StatusInTransit:
		return "Package in transit to destination"
	case StatusDelivered:
		return "Package delivered to recipient"
	default:
		return "Status updated"
	}
}
