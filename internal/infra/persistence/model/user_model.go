// Package model holds the GORM persistence models mirroring the database
// tables. They are mapped to and from domain entities at the repository
// boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'owner'"`
	PharmacyID   *uuid.UUID
	Points       int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Pharmacy *PharmacyModel `gorm:"foreignKey:PharmacyID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
