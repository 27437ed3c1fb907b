// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// PharmacyView is the API projection of a pharmacy.
type PharmacyView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ContactNumber string    `json:"contactNumber"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewPharmacyView maps a pharmacy entity to its API projection.
func NewPharmacyView(p *entity.Pharmacy) *PharmacyView {
	if p == nil {
		return nil
	}

	return &PharmacyView{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		ContactNumber: p.ContactNumber,
		Verified:      p.Verified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// MedicineView is the API projection of a catalog entry.
type MedicineView struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Brand       string                  `json:"brand"`
	Category    entity.MedicineCategory `json:"category"`
	Description string                  `json:"description,omitempty"`
}

// NewMedicineView maps a medicine entity to its API projection.
func NewMedicineView(m *entity.Medicine) *MedicineView {
	if m == nil {
		return nil
	}

	return &MedicineView{
		ID:          m.ID,
		Name:        m.Name,
		Brand:       m.Brand,
		Category:    m.Category,
		Description: m.Description,
	}
}

// StockView is the API projection of a stock row as returned by the
// owner-facing inventory routes, with the medicine reference expanded.
type StockView struct {
	ID                uuid.UUID          `json:"id"`
	PharmacyID        uuid.UUID          `json:"pharmacyId"`
	MedicineID        uuid.UUID          `json:"medicineId"`
	Medicine          *MedicineView      `json:"medicine,omitempty"`
	Quantity          int                `json:"quantity"`
	Price             *float64           `json:"price"`
	InStock           bool               `json:"inStock"`
	Status            entity.StockStatus `json:"status"`
	VerificationCount int                `json:"verificationCount"`
	LastUpdatedBy     *uuid.UUID         `json:"lastUpdatedBy,omitempty"`
	LastUpdatedAt     *time.Time         `json:"lastUpdatedAt,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// NewStockView maps a stock entity to its API projection.
func NewStockView(s *entity.Stock) *StockView {
	if s == nil {
		return nil
	}

	return &StockView{
		ID:                s.ID,
		PharmacyID:        s.PharmacyID,
		MedicineID:        s.MedicineID,
		Medicine:          NewMedicineView(s.Medicine),
		Quantity:          s.Quantity,
		Price:             s.Price,
		InStock:           s.InStock,
		Status:            s.Status,
		VerificationCount: s.VerificationCount,
		LastUpdatedBy:     s.LastUpdatedBy,
		LastUpdatedAt:     s.LastUpdatedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
