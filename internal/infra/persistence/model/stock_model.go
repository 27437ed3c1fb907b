package model

import (
	"time"

	"github.com/google/uuid"
)

// StockModel mirrors the 'stocks' table. The composite unique index on
// (pharmacy_id, medicine_id) guarantees at most one row per pair.
type StockModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PharmacyID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_pharmacy_medicine"`
	MedicineID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_pharmacy_medicine"`
	Quantity          int       `gorm:"not null;default:0"`
	Price             *float64
	InStock           bool   `gorm:"not null;default:true"`
	Status            string `gorm:"type:varchar(20);not null;default:'In Stock'"`
	VerificationCount int    `gorm:"not null;default:0"`
	LastUpdatedBy     *uuid.UUID
	LastUpdatedAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Pharmacy *PharmacyModel `gorm:"foreignKey:PharmacyID"`
	Medicine *MedicineModel `gorm:"foreignKey:MedicineID"`
	Verifier *UserModel     `gorm:"foreignKey:LastUpdatedBy"`
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "stocks"
}
