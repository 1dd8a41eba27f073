package handler

import (
	"github.com/transpoease/booking-system/internal/core/pricing"
	"github.com/transpoease/booking-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBookingRequest, customerID string) ports.CreateBookingInput {
	return ports.CreateBookingInput{
		CustomerID:          customerID,
		PickupAddress:       toAddressInput(req.PickupAddress),
		DeliveryAddress:     toAddressInput(req.DeliveryAddress),
		PackageType:         req.PackageType,
		WeightKg:            req.WeightKg,
		PackageDescription:  req.PackageDescription,
		SpecialInstructions: req.SpecialInstructions,
	}
}

func toAddressInput(a addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

// --- Service result → HTTP response ---

func toBookingResponse(d *ports.BookingDetail) bookingResponse {
	return bookingResponse{
		ID:                  d.ID,
		TrackingNumber:      d.TrackingNumber,
		Status:              d.Status,
		PackageType:         d.PackageType,
		WeightKg:            d.WeightKg,
		PackageDescription:  d.PackageDescription,
		SpecialInstructions: d.SpecialInstructions,
		PickupAddress:       toAddressResponse(d.PickupAddress),
		DeliveryAddress:     toAddressResponse(d.DeliveryAddress),
		Price:               pricing.Round2(d.Price),
		EstimatedDelivery:   d.EstimatedDelivery.UTC(),
		ActualDelivery:      d.ActualDelivery,
		CreatedAt:           d.CreatedAt.UTC(),
		UpdatedAt:           d.UpdatedAt.UTC(),
		Timeline:            d.Timeline,
		Links: bookingLinks{
			Self:  "/v1/bookings/" + d.TrackingNumber,
			Track: "/v1/track/" + d.TrackingNumber,
		},
	}
}

func toAddressResponse(a ports.AddressInput) addressResponse {
	return addressResponse{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toBookingListResponse(items []ports.BookingDetail) bookingListResponse {
	data := make([]bookingResponse, len(items))
	for i := range items {
		data[i] = toBookingResponse(&items[i])
	}
	return bookingListResponse{Data: data}
}

func toAdminListResponse(r *ports.ListBookingsResult) adminListBookingsResponse {
	data := make([]bookingResponse, len(r.Items))
	for i := range r.Items {
		data[i] = toBookingResponse(&r.Items[i])
	}
	return adminListBookingsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toTrackingResponse(info *ports.TrackingInfo) trackingResponse {
	return trackingResponse{
		TrackingNumber:    info.TrackingNumber,
		Status:            info.Status,
		PackageType:       info.PackageType,
		OriginCity:        info.OriginCity,
		DestinationCity:   info.DestinationCity,
		EstimatedDelivery: info.EstimatedDelivery.UTC(),
		ActualDelivery:    info.ActualDelivery,
		Timeline:          info.Timeline,
	}
}
