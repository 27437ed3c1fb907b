package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMedicineNotFound is returned when a medicine is not found.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineRepository defines the read-mostly operations for the medicine
// catalog. Catalog entries are created only by the seeding tool.
type MedicineRepository interface {
	// FindByID retrieves a catalog entry by its unique ID.
	// Returns ErrMedicineNotFound if no entry matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)

	// FindAll retrieves every catalog entry, ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Medicine, error)

	// SearchByName retrieves entries whose name contains the query anywhere,
	// case-insensitively. The query is treated as a literal string; pattern
	// metacharacters are escaped before matching.
	SearchByName(ctx context.Context, query string) ([]*entity.Medicine, error)

	// Create persists a new catalog entry. Used by seeding only.
	Create(ctx context.Context, medicine *entity.Medicine) error
}
