package ports

import (
	"context"
	"time"

	"github.com/transpoease/booking-system/internal/core/domain"
)

// ListBookingsFilter carries query parameters for the admin booking list.
type ListBookingsFilter struct {
	Status      string // optional: filter by lifecycle status
	PackageType string // optional: filter by package type
	Page        int    // 1-based
	Limit       int    // max rows per page (capped at 100 by service)
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Create inserts a new booking and fills in its generated ID. A tracking
	// number collision with the unique index surfaces as
	// domain.ErrDuplicateTrackingNumber so the caller can retry.
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Booking, error)
	// ListByCustomer returns all of a customer's bookings, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// List returns a page of bookings matching filter and the total count,
	// newest first.
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
	// UpdateStatus sets the booking's status and updated_at, and when
	// actualDelivery is non-nil stamps the actual delivery date. Returns the
	// updated booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actualDelivery *time.Time, updatedAt time.Time) (*domain.Booking, error)
}
