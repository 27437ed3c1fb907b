package usecase

import (
	"context"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the credentials for an existing account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is returned by register and login. The token authenticates
// subsequent requests via the x-auth-token header.
type AuthOutput struct {
	Token string           `json:"token"`
	User  *entity.UserView `json:"user"`
}

// AuthUsecase defines credential and session operations.
type AuthUsecase interface {
	// Register creates a new owner account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	// Login verifies credentials and issues a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// CurrentUser resolves the authenticated user's public profile.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.UserView, error)
}
