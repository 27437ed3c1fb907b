package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/delivery/http/response"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PharmacyHandler holds dependencies for the owner-facing pharmacy and
// inventory handlers.
type PharmacyHandler struct {
	inventory usecase.InventoryUsecase
	catalog   usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler, injected by Fx.
func NewPharmacyHandler(inventory usecase.InventoryUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *PharmacyHandler {
	return &PharmacyHandler{
		inventory: inventory,
		catalog:   catalog,
		logger:    logger,
	}
}

func ownerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrNoToken
	}

	return userID, nil
}

// ListAll returns every registered pharmacy. Public.
func (h *PharmacyHandler) ListAll(c echo.Context) error {
	pharmacies, err := h.catalog.ListPharmacies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, pharmacies)
}

// Register creates a pharmacy under the calling owner.
func (h *PharmacyHandler) Register(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterPharmacyInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind pharmacy input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	pharmacy, err := h.inventory.RegisterPharmacy(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, pharmacy)
}

// Update patches the owner's pharmacy profile.
func (h *PharmacyHandler) Update(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePharmacyInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind pharmacy update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	pharmacy, err := h.inventory.UpdatePharmacy(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, pharmacy)
}

// Mine returns the owner's pharmacy.
func (h *PharmacyHandler) Mine(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	pharmacy, err := h.inventory.GetMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, pharmacy)
}

// QRCode streams a PNG storefront code for the owner's pharmacy.
func (h *PharmacyHandler) QRCode(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	png, err := h.inventory.PharmacyQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMedicines returns the shared medicine catalog for stock entry.
func (h *PharmacyHandler) ListMedicines(c echo.Context) error {
	medicines, err := h.catalog.ListMedicines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, medicines)
}

// ListStock returns the owner's stock rows.
func (h *PharmacyHandler) ListStock(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	stocks, err := h.inventory.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stocks)
}

// UpsertStock creates or refreshes the stock row for a medicine.
func (h *PharmacyHandler) UpsertStock(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpsertStockInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind stock input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	stock, err := h.inventory.UpsertStock(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stock)
}

// UpdateStock patches one stock row by ID.
func (h *PharmacyHandler) UpdateStock(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	stockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrStockItemNotFound.WrapMessage("malformed stock ID")
	}

	var input usecase.UpdateStockInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind stock update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	stock, err := h.inventory.UpdateStock(c.Request().Context(), userID, stockID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stock)
}

// DeleteStock removes one stock row by ID.
func (h *PharmacyHandler) DeleteStock(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	stockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrStockItemNotFound.WrapMessage("malformed stock ID")
	}

	if err := h.inventory.DeleteStock(c.Request().Context(), userID, stockID); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Stock item removed")
}
