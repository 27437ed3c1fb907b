package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStockNotFound is returned when a stock row is not found.
var ErrStockNotFound = errors.New("stock not found")

// ErrDuplicateStock is returned when a second stock row is created for the
// same (pharmacy, medicine) pair.
var ErrDuplicateStock = errors.New("stock already exists for this pharmacy and medicine")

// StockRepository defines the operations for stock persistence. Uniqueness of
// the (pharmacy, medicine) pair is enforced by a composite unique index.
type StockRepository interface {
	// FindByID retrieves a single stock row by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Stock, error)

	// FindByPharmacyAndMedicine retrieves the unique row for the pair.
	FindByPharmacyAndMedicine(ctx context.Context, pharmacyID, medicineID uuid.UUID) (*entity.Stock, error)

	// FindByPharmacy retrieves all rows for a pharmacy, newest-updated first,
	// with the medicine reference expanded.
	FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Stock, error)

	// FindInStockByMedicines retrieves all in-stock rows referencing any of
	// the given medicines, with pharmacy, medicine and last verifier
	// expanded, ordered by price ascending (nulls last) then pharmacy name.
	FindInStockByMedicines(ctx context.Context, medicineIDs []uuid.UUID) ([]*entity.Stock, error)

	// Create persists a new stock row.
	Create(ctx context.Context, stock *entity.Stock) error

	// Update modifies an existing stock row.
	Update(ctx context.Context, stock *entity.Stock) error

	// Delete removes the row with the given ID, but only when it belongs to
	// the given pharmacy. Returns ErrStockNotFound otherwise.
	Delete(ctx context.Context, id, pharmacyID uuid.UUID) error
}
