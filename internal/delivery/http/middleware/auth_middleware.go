// Package middleware contains the HTTP middleware chain.
package middleware

import (
	deliverycontext "medifind/internal/delivery/context"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderAuthToken carries the session token. The API predates the
// Authorization Bearer convention and clients still send this header.
const HeaderAuthToken = "x-auth-token"

// AuthMiddleware validates the session token and attaches the caller's
// identity to the request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the x-auth-token header. A missing token is
// rejected 401, a present but invalid one 400.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(HeaderAuthToken)
		if tokenString == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
		}

		deliverycontext.SetPrincipal(c, claims.UserID, claims.Role)

		return next(c)
	}
}
