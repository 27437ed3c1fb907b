package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus is the crowd-reported availability of a stock row. It is
// tracked independently from the owner-maintained InStock flag: owner
// inventory writes never move it, only verification reports do.
type StockStatus string

const (
	// StatusInStock marks the medicine as available at the pharmacy.
	StatusInStock StockStatus = "In Stock"
	// StatusOutOfStock marks the medicine as unavailable at the pharmacy.
	StatusOutOfStock StockStatus = "Out of Stock"
)

// IsValid checks if the status is one of the two reportable values.
func (s StockStatus) IsValid() bool {
	return s == StatusInStock || s == StatusOutOfStock
}

// String returns the string representation of the status.
func (s StockStatus) String() string {
	return string(s)
}

// Stock links one Pharmacy to one Medicine with price and availability.
// At most one row exists per (PharmacyID, MedicineID) pair.
type Stock struct {
	ID                uuid.UUID   // The unique identifier for the stock row.
	PharmacyID        uuid.UUID   // The pharmacy this row belongs to.
	MedicineID        uuid.UUID   // The medicine this row prices.
	Quantity          int         // Units on hand, >= 0.
	Price             *float64    // Unit price in rupees, nil when the owner has not set one.
	InStock           bool        // Owner-maintained availability flag.
	Status            StockStatus // Latest crowd-verified status.
	VerificationCount int         // Number of crowd reports received, monotonically increasing.
	LastUpdatedBy     *uuid.UUID  // The user whose report last touched Status, nil before the first report.
	LastUpdatedAt     *time.Time  // When that report arrived.
	CreatedAt         time.Time   // Timestamp of when this row was created.
	UpdatedAt         time.Time   // Timestamp of the last modification.

	// Expanded references, populated by the repository on joined reads and
	// nil otherwise.
	Medicine *Medicine
	Pharmacy *Pharmacy
	Verifier *User // The last verifying user; only Name is consumed by the API.
}
