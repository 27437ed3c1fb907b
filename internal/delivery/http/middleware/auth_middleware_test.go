package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/service"
	mockssvc "medifind/internal/mocks/service"
)

func newAuthTestContext(t *testing.T, token string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	if token != "" {
		req.Header.Set(HeaderAuthToken, token)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthenticate_MissingToken(t *testing.T) {
	tokenSvc := mockssvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")

		return nil
	})

	err := handler(newAuthTestContext(t, ""))
	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockssvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token signature is invalid"))
	m := NewAuthMiddleware(tokenSvc)

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid token")

		return nil
	})

	err := handler(newAuthTestContext(t, "garbage"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthenticate_ValidTokenSetsPrincipal(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockssvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.TokenClaims{
		UserID: userID,
		Role:   entity.RoleOwner,
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthTestContext(t, "good-token")
	handler := m.Authenticate(func(c echo.Context) error {
		gotID, ok := deliverycontext.GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)

		gotRole, ok := deliverycontext.GetRole(c)
		assert.True(t, ok)
		assert.Equal(t, entity.RoleOwner, gotRole)

		return nil
	})

	assert.NoError(t, handler(c))
}
