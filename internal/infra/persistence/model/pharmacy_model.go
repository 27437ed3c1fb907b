package model

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyModel mirrors the 'pharmacies' table.
type PharmacyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Address       string    `gorm:"type:text;not null"`
	Latitude      float64   `gorm:"not null"`
	Longitude     float64   `gorm:"not null"`
	ContactNumber string    `gorm:"type:varchar(30);not null"`
	Verified      bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}
