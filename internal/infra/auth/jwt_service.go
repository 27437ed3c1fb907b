// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medifind/config"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Token lifetime, one hour by default.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Token.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: cfg.Token.Secret,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed HS256 token embedding the user's ID and role.
func (s *jwtService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a token string and
// returns the embedded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to parse token structure"), err)
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("user id missing from token")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid user id in token")
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.New("invalid role in token")
	}

	return &service.TokenClaims{UserID: userID, Role: role}, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
