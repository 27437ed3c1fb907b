package context

import (
	"medifind/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the authenticated user ID.
	KeyUserID ContextKey = "user_id"

	// KeyRole is the key for storing the authenticated user's role.
	KeyRole ContextKey = "role"
)

// SetPrincipal stores the authenticated user's identity on the request.
func SetPrincipal(c echo.Context, userID uuid.UUID, role entity.Role) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRole), role)
}

// GetUserID extracts the authenticated user ID from echo.Context.
// The second return value reports whether a principal was set.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok
}

// GetRole extracts the authenticated user's role from echo.Context.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(KeyRole)).(entity.Role)

	return role, ok
}
