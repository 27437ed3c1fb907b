package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pharmacy is a physical storefront registered by exactly one owner. The
// owning side of the relationship lives on User.PharmacyID; the pharmacy row
// itself carries no back reference.
type Pharmacy struct {
	ID            uuid.UUID // The unique identifier for the pharmacy.
	Name          string    // The pharmacy's display name.
	Address       string    // Free-text address, formed as "{address}, {city}" at registration.
	Latitude      float64   // Caller-supplied latitude; no geocoding happens server side.
	Longitude     float64   // Caller-supplied longitude.
	ContactNumber string    // Public contact number.
	Verified      bool      // Administratively set flag; no API route mutates it.
	CreatedAt     time.Time // Timestamp of when this pharmacy was registered.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
