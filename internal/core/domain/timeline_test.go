package domain

import (
	"testing"
	"time"
)

func testBooking(status BookingStatus) *Booking {
	created := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	return &Booking{
		TrackingNumber:    "A1B2C3D4E5",
		Status:            status,
		PickupAddress:     Address{Street: "1 Main St", City: "Austin", State: "TX", ZipCode: "73301", Country: "USA"},
		DeliveryAddress:   Address{Street: "9 Elm St", City: "Denver", State: "CO", ZipCode: "80014", Country: "USA"},
		EstimatedDelivery: created.AddDate(0, 0, 3),
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestBuildTimeline_PendingBooking(t *testing.T) {
	b := testBooking(StatusPending)
	events := BuildTimeline(b)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// newest first: estimated delivery is 3 days after creation
	if events[0].Status != StatusEstimated {
		t.Errorf("expected first event %q, got %q", StatusEstimated, events[0].Status)
	}
	if events[0].Location != "Denver" {
		t.Errorf("estimated event location = %q, want Denver", events[0].Location)
	}
	if events[1].Status != string(StatusPending) {
		t.Errorf("expected creation event last, got %q", events[1].Status)
	}
	if events[1].Location != "Austin" {
		t.Errorf("creation event location = %q, want Austin", events[1].Location)
	}
}

func TestBuildTimeline_InTransitUsesPlaceholderLocation(t *testing.T) {
	b := testBooking(StatusInTransit)
	b.UpdatedAt = b.CreatedAt.Add(24 * time.Hour)

	events := BuildTimeline(b)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	var found bool
	for _, e := range events {
		if e.Status == string(StatusInTransit) {
			found = true
			if e.Location != InTransitLocation {
				t.Errorf("in_transit location = %q, want %q", e.Location, InTransitLocation)
			}
			if !e.Date.Equal(b.UpdatedAt) {
				t.Errorf("in_transit date = %v, want UpdatedAt %v", e.Date, b.UpdatedAt)
			}
		}
	}
	if !found {
		t.Fatalf("no in_transit event in timeline")
	}
}

// A delivered booking collapses the intermediate lifecycle into a single
// status event: no distinct picked_up or in_transit rows survive.
func TestBuildTimeline_DeliveredCollapsesHistory(t *testing.T) {
	b := testBooking(StatusDelivered)
	b.UpdatedAt = b.CreatedAt.Add(48 * time.Hour)
	actual := b.CreatedAt.Add(50 * time.Hour)
	b.ActualDelivery = &actual

	events := BuildTimeline(b)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	// sorted strictly descending by date
	for i := 1; i < len(events); i++ {
		if events[i].Date.After(events[i-1].Date) {
			t.Fatalf("events not sorted descending: %v after %v", events[i].Date, events[i-1].Date)
		}
	}

	var statusEvents, deliveredAtUpdated int
	for _, e := range events {
		switch e.Status {
		case string(StatusPickedUp), string(StatusInTransit):
			statusEvents++
		case string(StatusDelivered):
			if e.Date.Equal(b.UpdatedAt) {
				deliveredAtUpdated++
			}
		}
	}
	if statusEvents != 0 {
		t.Errorf("expected no picked_up/in_transit rows, got %d", statusEvents)
	}
	if deliveredAtUpdated != 1 {
		t.Errorf("expected exactly one collapsed status event, got %d", deliveredAtUpdated)
	}

	// both delivered events point at the delivery city
	for _, e := range events {
		if e.Status == string(StatusDelivered) && e.Location != "Denver" {
			t.Errorf("delivered event location = %q, want Denver", e.Location)
		}
	}
}
