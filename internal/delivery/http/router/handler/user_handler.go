package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/delivery/http/response"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for verification and leaderboard
// handlers.
type UserHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// verifyStockResponse acknowledges an accepted report.
type verifyStockResponse struct {
	Msg    string             `json:"msg"`
	Points *int               `json:"points"`
	Stock  *usecase.StockView `json:"stock"`
}

// VerifyStock records an on-the-ground availability report.
func (h *UserHandler) VerifyStock(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var input usecase.VerifyStockInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.VerifyStock(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, verifyStockResponse{
		Msg:    "Stock verified, thank you for contributing!",
		Points: output.Points,
		Stock:  output.Stock,
	})
}

// Leaderboard returns the top contributors. Public.
func (h *UserHandler) Leaderboard(c echo.Context) error {
	entries, err := h.uc.Leaderboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, entries)
}
