package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPickedUp  BookingStatus = "picked_up"
	StatusInTransit BookingStatus = "in_transit"
	StatusDelivered BookingStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions.
// The lifecycle is strictly monotonic: pending → picked_up → in_transit → delivered.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusPickedUp},
	StatusPickedUp:  {StatusInTransit},
	StatusInTransit: {StatusDelivered},
}

// PackageType classifies a package for pricing and delivery estimates.
type PackageType string

const (
	PackageStandard PackageType = "standard"
	PackageExpress  PackageType = "express"
	PackageFragile  PackageType = "fragile"
	PackageLarge    PackageType = "large"
)

var ErrValidation = errors.New("invalid booking input")
var ErrBookingNotFound = errors.New("booking not found")
var ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
var ErrTrackingRetriesExhausted = errors.New("could not allocate a unique tracking number")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus returns the BookingStatus for a raw string, or false when unknown.
func ParseStatus(raw string) (BookingStatus, bool) {
	switch s := BookingStatus(raw); s {
	case StatusPending, StatusPickedUp, StatusInTransit, StatusDelivered:
		return s, true
	}
	return "", false
}

// Address represents a structured physical location.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

// IsZero reports whether the address carries no data at all.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Booking is the core aggregate root: one customer request to ship a package
// between two addresses.
//
// TrackingNumber is assigned at creation and never reassigned. Price and
// EstimatedDeliveryDate are computed once at creation and are not recomputed
// on status changes. ActualDeliveryDate is set only when the booking
// transitions to delivered.
type Booking struct {
	ID                  string        `json:"id" bson:"_id,omitempty"`
	TrackingNumber      string        `json:"tracking_number" bson:"tracking_number"`
	CustomerID          string        `json:"customer_id" bson:"customer_id"`
	PickupAddress       Address       `json:"pickup_address" bson:"pickup_address"`
	DeliveryAddress     Address       `json:"delivery_address" bson:"delivery_address"`
	PackageType         PackageType   `json:"package_type" bson:"package_type"`
	WeightKg            float64       `json:"weight_kg" bson:"weight_kg"`
	PackageDescription  string        `json:"package_description" bson:"package_description"`
	SpecialInstructions string        `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	Price               float64       `json:"price" bson:"price"`
	Status              BookingStatus `json:"status" bson:"status"`
	EstimatedDelivery   time.Time     `json:"estimated_delivery_date" bson:"estimated_delivery_date"`
	ActualDelivery      *time.Time    `json:"actual_delivery_date,omitempty" bson:"actual_delivery_date,omitempty"`
	CreatedAt           time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" bson:"updated_at"`
}
