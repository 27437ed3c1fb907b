// Package repository defines the persistence contracts the application layer
// depends on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user accounts across all roles.
type UserRepository interface {
	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// TopContributors returns up to limit users carrying the given role,
	// ordered by points descending. Used by the public leaderboard.
	TopContributors(ctx context.Context, role entity.Role, limit int) ([]*entity.User, error)
}
