package repository

import (
	"context"
	"errors"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPharmacyNotFound is returned when a pharmacy is not found.
var ErrPharmacyNotFound = errors.New("pharmacy not found")

// PharmacyRepository defines the operations for pharmacy persistence.
type PharmacyRepository interface {
	// FindByID retrieves a single pharmacy by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// FindAll retrieves every pharmacy, ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Pharmacy, error)

	// Create persists a new pharmacy.
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error

	// Update modifies an existing pharmacy.
	Update(ctx context.Context, pharmacy *entity.Pharmacy) error
}
