package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/api/metrics"
	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/ports"
	"github.com/transpoease/booking-system/internal/core/pricing"
	"github.com/transpoease/booking-system/internal/core/tracking"
)

// maxTrackingAttempts bounds the regenerate-and-retry loop on tracking
// number collisions.
const maxTrackingAttempts = 5

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TrackingCache caches public tracking lookups. Get returns (nil, nil) on a
// cache miss.
type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*ports.TrackingInfo, error)
	Set(ctx context.Context, info *ports.TrackingInfo) error
	Invalidate(ctx context.Context, trackingNumber string) error
}

type BookingService struct {
	repo   ports.BookingRepository
	cache  TrackingCache
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, cache TrackingCache, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, cache: cache, logger: logger}
}

// CreateBooking validates the input, prices the package, issues a tracking
// number, and persists the booking. On a tracking number collision the
// insert is retried with a fresh number up to maxTrackingAttempts times.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingDetail, error) {
	start := time.Now()

	booking, err := s.createBooking(ctx, input)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.BookingCreateDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.PackageType)).Inc()
	s.logger.Info().
		Str("tracking_number", booking.TrackingNumber).
		Str("customer_id", booking.CustomerID).
		Str("package_type", string(booking.PackageType)).
		Msg("booking created")

	return toBookingDetail(booking), nil
}

func (s *BookingService) createBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	packageType := domain.PackageType(input.PackageType)
	if input.PackageType == "" {
		packageType = domain.PackageStandard
	}

	price, err := pricing.Price(packageType, input.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		CustomerID:          input.CustomerID,
		PickupAddress:       toAddress(input.PickupAddress),
		DeliveryAddress:     toAddress(input.DeliveryAddress),
		PackageType:         packageType,
		WeightKg:            input.WeightKg,
		PackageDescription:  input.PackageDescription,
		SpecialInstructions: input.SpecialInstructions,
		Price:               price,
		Status:              domain.StatusPending,
		EstimatedDelivery:   pricing.EstimatedDeliveryDate(packageType, now),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	for attempt := 1; attempt <= maxTrackingAttempts; attempt++ {
		booking.TrackingNumber = tracking.NewNumber()
		err := s.repo.Create(ctx, booking)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, domain.ErrDuplicateTrackingNumber) {
			s.logger.Error().Err(err).Msg("failed to create booking")
			return nil, err
		}
		metrics.TrackingNumberRetriesTotal.Inc()
		s.logger.Warn().
			Str("tracking_number", booking.TrackingNumber).
			Int("attempt", attempt).
			Msg("tracking number collision, regenerating")
	}

	return nil, domain.ErrTrackingRetriesExhausted
}

func validateCreateInput(input ports.CreateBookingInput) error {
	if toAddress(input.PickupAddress).IsZero() {
		return fmt.Errorf("%w: pickup address is required", domain.ErrValidation)
	}
	if toAddress(input.DeliveryAddress).IsZero() {
		return fmt.Errorf("%w: delivery address is required", domain.ErrValidation)
	}
	if input.PackageDescription == "" {
		return fmt.Errorf("%w: package description is required", domain.ErrValidation)
	}
	if input.PackageType != "" {
		switch domain.PackageType(input.PackageType) {
		case domain.PackageStandard, domain.PackageExpress, domain.PackageFragile, domain.PackageLarge:
		default:
			return fmt.Errorf("%w: unknown package type %q", domain.ErrValidation, input.PackageType)
		}
	}
	return nil
}

// GetBooking returns a booking by tracking number, scoped to customerID when
// non-empty. A booking owned by someone else is reported as not found rather
// than forbidden, so the endpoint does not leak tracking number existence.
func (s *BookingService) GetBooking(ctx context.Context, trackingNumber, customerID string) (*ports.BookingDetail, error) {
	booking, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if customerID != "" && booking.CustomerID != customerID {
		return nil, domain.ErrBookingNotFound
	}
	detail := toBookingDetail(booking)
	detail.Timeline = toTimelineItems(booking)
	return detail, nil
}

// ListCustomerBookings returns all bookings owned by a customer, newest first.
func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID string) ([]ports.BookingDetail, error) {
	bookings, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]ports.BookingDetail, len(bookings))
	for i, b := range bookings {
		out[i] = *toBookingDetail(b)
	}
	return out, nil
}

// Track serves the public tracking lookup through the cache.
func (s *BookingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingInfo, error) {
	if cached, err := s.cache.Get(ctx, trackingNumber); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking cache read failed")
	} else if cached != nil {
		metrics.TrackingLookupsTotal.WithLabelValues("cache_hit").Inc()
		return cached, nil
	}

	booking, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}
	metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()

	info := toTrackingInfo(booking)
	if err := s.cache.Set(ctx, info); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking cache write failed")
	}
	return info, nil
}

// ListBookings returns a page of bookings across all customers (admin view).
func (s *BookingService) ListBookings(ctx context.Context, input ports.ListBookingsInput) (*ports.ListBookingsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	bookings, total, err := s.repo.List(ctx, ports.ListBookingsFilter{
		Status:      input.Status,
		PackageType: input.PackageType,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.BookingDetail, len(bookings))
	for i, b := range bookings {
		items[i] = *toBookingDetail(b)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListBookingsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus applies an admin lifecycle update. Transitions must follow the
// monotonic chain pending → picked_up → in_transit → delivered; the actual
// delivery date is stamped on the transition to delivered. Price and the
// estimated delivery date are never recomputed.
func (s *BookingService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*ports.BookingDetail, error) {
	newStatus, ok := domain.ParseStatus(input.NewStatus)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.NewStatus)
	}

	booking, err := s.repo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, newStatus)
	}

	now := time.Now().UTC()
	var actualDelivery *time.Time
	if newStatus == domain.StatusDelivered {
		actualDelivery = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, input.BookingID, newStatus, actualDelivery, now)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, updated.TrackingNumber); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", updated.TrackingNumber).Msg("tracking cache invalidation failed")
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(newStatus)).Inc()
	s.logger.Info().
		Str("tracking_number", updated.TrackingNumber).
		Str("status", string(newStatus)).
		Msg("booking status updated")

	return toBookingDetail(updated), nil
}

// --- Mapping helpers ---

func toAddress(a ports.AddressInput) domain.Address {
	return domain.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toAddressInput(a domain.Address) ports.AddressInput {
	return ports.AddressInput{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toBookingDetail(b *domain.Booking) *ports.BookingDetail {
	return &ports.BookingDetail{
		ID:                  b.ID,
		TrackingNumber:      b.TrackingNumber,
		Status:              string(b.Status),
		PackageType:         string(b.PackageType),
		WeightKg:            b.WeightKg,
		PackageDescription:  b.PackageDescription,
		SpecialInstructions: b.SpecialInstructions,
		PickupAddress:       toAddressInput(b.PickupAddress),
		DeliveryAddress:     toAddressInput(b.DeliveryAddress),
		Price:               b.Price,
		EstimatedDelivery:   b.EstimatedDelivery,
		ActualDelivery:      b.ActualDelivery,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func toTimelineItems(b *domain.Booking) []ports.TimelineItem {
	timeline := domain.BuildTimeline(b)
	items := make([]ports.TimelineItem, len(timeline))
	for i, e := range timeline {
		items[i] = ports.TimelineItem{
			Date:        e.Date,
			Status:      e.Status,
			Description: e.Description,
			Location:    e.Location,
		}
	}
	return items
}

func toTrackingInfo(b *domain.Booking) *ports.TrackingInfo {
	return &ports.TrackingInfo{
		TrackingNumber:    b.TrackingNumber,
		Status:            string(b.Status),
		PackageType:       string(b.PackageType),
		OriginCity:        b.PickupAddress.City,
		DestinationCity:   b.DeliveryAddress.City,
		EstimatedDelivery: b.EstimatedDelivery,
		ActualDelivery:    b.ActualDelivery,
		Timeline:          toTimelineItems(b),
	}
}
