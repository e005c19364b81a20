package user

import (
	"context"

	domain "user-service/internal/domain/user"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., PostgreSQL, in-memory map) to be used interchangeably.
type Repository interface {
	// FindByID retrieves a user by ID. Absence is reported as (nil, nil),
	// never as an error.
	FindByID(ctx context.Context, id uint64) (*domain.User, error)

	// Save persists the given user. An implementation may assign u.ID as
	// part of its own id-assignment policy.
	Save(ctx context.Context, u *domain.User) error
}

// Service defines the interface for user business operations exposed to
// transport adapters.
type Service interface {
	GetUser(ctx context.Context, id uint64) (*domain.User, error)
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
}
