package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"medifind/internal/delivery/http/response"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the public search endpoint.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// searchResponse is the envelope for a successful lookup.
type searchResponse struct {
	Count   int                     `json:"count"`
	Results []*usecase.SearchResult `json:"results"`
}

// noMedicinesResponse renders the "query matched nothing" outcome,
// which carries a message instead of a count.
type noMedicinesResponse struct {
	Msg     string                  `json:"msg"`
	Results []*usecase.SearchResult `json:"results"`
}

// Search handles the public availability lookup.
func (h *SearchHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{Query: c.QueryParam("q")}

	lat, err := optionalFloat(c.QueryParam("lat"))
	if err != nil {
		return domainerrors.ErrInvalidCoordinates.WrapMessage("malformed lat parameter")
	}
	lng, err := optionalFloat(c.QueryParam("lng"))
	if err != nil {
		return domainerrors.ErrInvalidCoordinates.WrapMessage("malformed lng parameter")
	}
	input.Latitude = lat
	input.Longitude = lng

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.NoMedicines {
		return response.JSON(c, http.StatusOK, noMedicinesResponse{
			Msg:     "No medicines found",
			Results: output.Results,
		})
	}

	return response.JSON(c, http.StatusOK, searchResponse{
		Count:   output.Count,
		Results: output.Results,
	})
}

// optionalFloat parses a query parameter that may be absent.
func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
