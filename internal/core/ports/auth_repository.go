package ports

import (
	"context"

	"github.com/transpoease/booking-system/internal/core/domain"
)

// AuthRepository defines the interface for customer account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}
