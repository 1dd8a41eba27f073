package ports

import (
	"context"
	"time"
)

// AddressInput holds a structured physical location. Addresses cross the API
// boundary already split into fields; there is no free-text parsing.
type AddressInput struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// CreateBookingInput carries all data needed to create a new booking.
type CreateBookingInput struct {
	CustomerID          string
	PickupAddress       AddressInput
	DeliveryAddress     AddressInput
	PackageType         string
	WeightKg            float64
	PackageDescription  string
	SpecialInstructions string
}

// BookingDetail is the full booking view returned to its owner and to admins.
type BookingDetail struct {
	ID                  string
	TrackingNumber      string
	Status              string
	PackageType         string
	WeightKg            float64
	PackageDescription  string
	SpecialInstructions string
	PickupAddress       AddressInput
	DeliveryAddress     AddressInput
	Price               float64
	EstimatedDelivery   time.Time
	ActualDelivery      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	// Timeline is populated on single-booking reads only; list views omit
	// it to keep payloads small.
	Timeline []TimelineItem
}

// TimelineItem is one derived milestone in a booking's public timeline.
type TimelineItem struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// TrackingInfo is the public tracking view: the safe subset of a booking plus
// its derived timeline. Internal fields (customer id, price, addresses beyond
// the cities) are deliberately absent.
type TrackingInfo struct {
	TrackingNumber    string         `json:"tracking_number"`
	Status            string         `json:"status"`
	PackageType       string         `json:"package_type"`
	OriginCity        string         `json:"origin_city"`
	DestinationCity   string         `json:"destination_city"`
	EstimatedDelivery time.Time      `json:"estimated_delivery_date"`
	ActualDelivery    *time.Time     `json:"actual_delivery_date,omitempty"`
	Timeline          []TimelineItem `json:"timeline"`
}

// UpdateStatusInput carries an admin lifecycle update.
type UpdateStatusInput struct {
	BookingID string
	NewStatus string
}

// ListBookingsInput carries parameters for the admin list endpoint.
type ListBookingsInput struct {
	Status      string
	PackageType string
	Page        int
	Limit       int
}

// ListBookingsResult is returned by ListBookings.
type ListBookingsResult struct {
	Items      []BookingDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookingService defines use-case operations for the booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingDetail, error)
	// GetBooking returns a booking by tracking number. When customerID is
	// non-empty the booking must belong to that customer; otherwise it is
	// reported as not found.
	GetBooking(ctx context.Context, trackingNumber, customerID string) (*BookingDetail, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]BookingDetail, error)
	// Track is the public lookup: no ownership check, reduced field set,
	// derived timeline.
	Track(ctx context.Context, trackingNumber string) (*TrackingInfo, error)
	ListBookings(ctx context.Context, input ListBookingsInput) (*ListBookingsResult, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*BookingDetail, error)
}
