package auth

import (
	"testing"
	"time"

	"medifind/config"
	"medifind/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Token: config.TokenConfig{Secret: secret, TTL: ttl},
	})
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleOwner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleOwner, claims.Role)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret", time.Hour)
	validator := newTestJWTService(t, "other-secret", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleUser.String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_UnknownRole(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "superadmin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 0)
	assert.Equal(t, time.Hour, svc.TokenDuration())
}
