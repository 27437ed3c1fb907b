// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. A user self-registers as a
// pharmacy owner by default; crowd contributors carry the "user" role and
// collect points for verifying stock reports.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's login identifier, globally unique.
	PasswordHash string     // Salted one-way hash of the password. Never leaves the domain layer.
	Name         string     // The user's display name.
	Role         Role       // The user's role: owner, admin or user.
	PharmacyID   *uuid.UUID // Back reference to the pharmacy this owner manages, nil until one is registered.
	Points       int        // Community-contribution score, credited by stock verifications.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// PublicView returns the externally visible user fields, without the
// password hash.
func (u *User) PublicView() *UserView {
	return &UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		PharmacyID: u.PharmacyID,
		Points:     u.Points,
	}
}

// UserView is the password-free projection of a User returned by the API.
type UserView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	PharmacyID *uuid.UUID `json:"pharmacyId,omitempty"`
	Points     int        `json:"points"`
}
