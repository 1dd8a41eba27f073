package ports

import (
	"context"

	"github.com/transpoease/booking-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (string, *domain.Customer, error)
}
