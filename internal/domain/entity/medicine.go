package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicineCategory represents the dosage form of a catalog entry.
type MedicineCategory string

// Catalog categories. The set mirrors the national formulary groupings used
// by the seeded catalog.
const (
	CategoryTablet    MedicineCategory = "Tablet"
	CategorySyrup     MedicineCategory = "Syrup"
	CategoryInjection MedicineCategory = "Injection"
	CategoryCapsule   MedicineCategory = "Capsule"
	CategoryDrops     MedicineCategory = "Drops"
	CategoryInhaler   MedicineCategory = "Inhaler"
	CategoryCream     MedicineCategory = "Cream"
	CategoryOintment  MedicineCategory = "Ointment"
	CategoryOther     MedicineCategory = "Other"
)

// IsValid checks if the category is one of the known dosage forms.
func (c MedicineCategory) IsValid() bool {
	switch c {
	case CategoryTablet, CategorySyrup, CategoryInjection, CategoryCapsule,
		CategoryDrops, CategoryInhaler, CategoryCream, CategoryOintment, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c MedicineCategory) String() string {
	return string(c)
}

// Medicine is an immutable catalog entry. Entries are created only by bulk
// seeding; there is no API route that creates or mutates them.
type Medicine struct {
	ID          uuid.UUID        // The unique identifier for the medicine.
	Name        string           // Generic or trade name searched by end users.
	Brand       string           // Brand or manufacturer name.
	Category    MedicineCategory // Dosage form.
	Description string           // Optional free-text description.
	CreatedAt   time.Time        // Timestamp of when this entry was seeded.
	UpdatedAt   time.Time        // Timestamp of the last modification.
}
