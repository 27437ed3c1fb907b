package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "medifind/internal/domain/errors"
)

func newSearchTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestSearch_MalformedCoordinates(t *testing.T) {
	h := NewSearchHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := []struct {
		name   string
		target string
	}{
		{name: "bad lat", target: "/api/medicines/search?q=paracetamol&lat=colombo"},
		{name: "bad lng", target: "/api/medicines/search?q=paracetamol&lat=6.9&lng=east"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.Search(newSearchTestContext(t, tc.target))
			require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, "Latitude and longitude must be numbers", appErr.Message())
		})
	}
}
