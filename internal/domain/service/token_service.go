package service

import (
	"time"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the decoded payload of a bearer token: who the caller is
// and which role they carry.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating the signed
// bearer tokens transported in the x-auth-token header.
type TokenService interface {
	// GenerateToken creates a signed token embedding the user's ID and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
