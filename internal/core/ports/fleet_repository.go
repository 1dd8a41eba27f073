package ports

import (
	"context"

	"github.com/transpoease/booking-system/internal/core/domain"
)

// VehicleRepository persists fleet vehicles.
type VehicleRepository interface {
	// Create inserts a vehicle; a duplicate vehicle number surfaces as
	// domain.ErrVehicleExists.
	Create(ctx context.Context, v *domain.Vehicle) error
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// RouteRepository persists delivery routes.
type RouteRepository interface {
	Create(ctx context.Context, r *domain.Route) error
	List(ctx context.Context) ([]*domain.Route, error)
}

// ScheduleRepository persists scheduled runs.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) error
	List(ctx context.Context) ([]*domain.Schedule, error)
}
