package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Banner answers the root path with a plain-text service banner.
func Banner(c echo.Context) error {
	return c.String(http.StatusOK, "MediFind API is running")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
