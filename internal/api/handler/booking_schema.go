package handler

import (
	"time"

	"github.com/transpoease/booking-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type addressRequest struct {
	Street  string `json:"street"   validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"    validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country"  validate:"required"`
}

type createBookingRequest struct {
	PickupAddress       addressRequest `json:"pickup_address"       validate:"required"`
	DeliveryAddress     addressRequest `json:"delivery_address"     validate:"required"`
	PackageType         string         `json:"package_type"         validate:"omitempty,oneof=standard express fragile large"`
	WeightKg            float64        `json:"weight_kg"            validate:"required,gt=0"`
	PackageDescription  string         `json:"package_description"  validate:"required"`
	SpecialInstructions string         `json:"special_instructions" validate:"omitempty,max=500"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending picked_up in_transit delivered"`
}

type quoteRequest struct {
	PackageType string  `json:"package_type" query:"package_type" validate:"omitempty,oneof=standard express fragile large"`
	WeightKg    float64 `json:"weight_kg"    query:"weight_kg"    validate:"required,gt=0"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type bookingLinks struct {
	Self  string `json:"self"`
	Track string `json:"track"`
}

type bookingResponse struct {
	ID                  string               `json:"id"`
	TrackingNumber      string               `json:"tracking_number"`
	Status              string               `json:"status"`
	PackageType         string               `json:"package_type"`
	WeightKg            float64              `json:"weight_kg"`
	PackageDescription  string               `json:"package_description"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	PickupAddress       addressResponse      `json:"pickup_address"`
	DeliveryAddress     addressResponse      `json:"delivery_address"`
	Price               float64              `json:"price"`
	EstimatedDelivery   time.Time            `json:"estimated_delivery_date"`
	ActualDelivery      *time.Time           `json:"actual_delivery_date,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	Timeline            []ports.TimelineItem `json:"timeline,omitempty"`
	Links               bookingLinks         `json:"_links"`
}

type bookingListResponse struct {
	Data []bookingResponse `json:"data"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type adminListBookingsResponse struct {
	Data       []bookingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type trackingResponse struct {
	TrackingNumber    string               `json:"tracking_number"`
	Status            string               `json:"status"`
	PackageType       string               `json:"package_type"`
	OriginCity        string               `json:"origin_city"`
	DestinationCity   string               `json:"destination_city"`
	EstimatedDelivery time.Time            `json:"estimated_delivery_date"`
	ActualDelivery    *time.Time           `json:"actual_delivery_date,omitempty"`
	Timeline          []ports.TimelineItem `json:"timeline"`
}

type quoteResponse struct {
	PackageType       string    `json:"package_type"`
	WeightKg          float64   `json:"weight_kg"`
	Price             float64   `json:"price"`
	EstimatedDelivery time.Time `json:"estimated_delivery_date"`
}

type courierOptionsResponse struct {
	Options []ports.CourierOption `json:"options"`
}

type contactResponse struct {
	MessageID string `json:"message_id"`
}
