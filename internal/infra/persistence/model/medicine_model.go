package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicineModel mirrors the 'medicines' table. Rows are written only by the
// seeding tool; the (name, brand) pair is unique so reseeding is idempotent.
type MedicineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_medicines_name_brand;index"`
	Brand       string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_medicines_name_brand"`
	Category    string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}
