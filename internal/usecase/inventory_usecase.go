package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterPharmacyInput carries the fields required to register a
// pharmacy under the calling owner.
type RegisterPharmacyInput struct {
	Name          string  `json:"name" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	City          string  `json:"city"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	ContactNumber string  `json:"contactNumber" validate:"required"`
}

// UpdatePharmacyInput is a partial update. Nil fields keep their
// current value.
type UpdatePharmacyInput struct {
	Name          *string  `json:"name"`
	Address       *string  `json:"address"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,longitude"`
	ContactNumber *string  `json:"contactNumber"`
}

// UpsertStockInput creates or refreshes the stock row for one medicine
// at the owner's pharmacy. Nil optional fields keep the existing value
// when the row already exists.
type UpsertStockInput struct {
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Price      *float64  `json:"price" validate:"omitempty,gte=0"`
	Quantity   *int      `json:"quantity" validate:"omitempty,gte=0"`
	InStock    *bool     `json:"inStock"`
}

// UpdateStockInput is a partial update of an existing stock row. Nil
// fields keep their current value.
type UpdateStockInput struct {
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	InStock  *bool    `json:"inStock"`
}

// InventoryUsecase covers everything a pharmacy owner manages: the
// pharmacy profile itself and its per-medicine stock rows.
type InventoryUsecase interface {
	// RegisterPharmacy creates a pharmacy and links it to the owner.
	// An owner may hold at most one pharmacy.
	RegisterPharmacy(ctx context.Context, ownerID uuid.UUID, input *RegisterPharmacyInput) (*PharmacyView, error)
	// UpdatePharmacy patches the owner's pharmacy profile.
	UpdatePharmacy(ctx context.Context, ownerID uuid.UUID, input *UpdatePharmacyInput) (*PharmacyView, error)
	// GetMine returns the owner's pharmacy.
	GetMine(ctx context.Context, ownerID uuid.UUID) (*PharmacyView, error)
	// PharmacyQR renders a storefront QR code for the owner's pharmacy.
	PharmacyQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error)

	// ListMine returns the owner's stock rows with medicines expanded.
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*StockView, error)
	// UpsertStock creates the stock row for a medicine, or refreshes it
	// when one already exists.
	UpsertStock(ctx context.Context, ownerID uuid.UUID, input *UpsertStockInput) (*StockView, error)
	// UpdateStock patches an existing stock row owned by the caller.
	UpdateStock(ctx context.Context, ownerID uuid.UUID, stockID uuid.UUID, input *UpdateStockInput) (*StockView, error)
	// DeleteStock removes a stock row owned by the caller.
	DeleteStock(ctx context.Context, ownerID uuid.UUID, stockID uuid.UUID) error
}
