package repository

import (
	"context"

	"fruitstand/internal/domain"
)

// UserRepository defines read operations for the seeded User records.
// The demo exposes no way to create, update, or delete users.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int, error)
}
