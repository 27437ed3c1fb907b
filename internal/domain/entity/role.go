// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleOwner indicates a pharmacy owner. Self-registration defaults to
	// this role so a fresh account can immediately register its storefront.
	RoleOwner Role = "owner"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular crowd-contributor account.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
