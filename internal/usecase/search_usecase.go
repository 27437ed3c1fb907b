package usecase

import (
	"context"
	"time"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchInput carries the public search parameters. Latitude and
// Longitude are optional; when both are present each result carries
// the distance from that point.
type SearchInput struct {
	Query     string
	Latitude  *float64
	Longitude *float64
}

// SearchPharmacy is the pharmacy slice of a search result.
type SearchPharmacy struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ContactNumber string    `json:"contactNumber"`
	Verified      bool      `json:"verified"`
}

// SearchResult is one availability row: a medicine stocked at a
// pharmacy, with the crowd-verification trail attached.
type SearchResult struct {
	ID                uuid.UUID          `json:"id"`
	Pharmacy          *SearchPharmacy    `json:"pharmacy"`
	Medicine          *MedicineView      `json:"medicine"`
	Price             *float64           `json:"price"`
	Quantity          int                `json:"quantity"`
	InStock           bool               `json:"inStock"`
	Status            entity.StockStatus `json:"status"`
	VerificationCount int                `json:"verificationCount"`
	LastUpdatedBy     *string            `json:"lastUpdatedBy"`
	LastUpdatedAt     *time.Time         `json:"lastUpdatedAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	DistanceKm        *float64           `json:"distanceKm,omitempty"`
}

// SearchOutput is the public search response. NoMedicines distinguishes
// "no medicine matches the query" from "matches exist but nothing is in
// stock"; the two render differently on the wire.
type SearchOutput struct {
	Count       int
	NoMedicines bool
	Results     []*SearchResult
}

// SearchUsecase is the public availability lookup.
type SearchUsecase interface {
	// Search finds in-stock rows for medicines matching the query,
	// cheapest first.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}
