// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, created on registration and looked up by
// email on every credential login. The password hash never leaves the backend.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email; doubles as the login identifier and token subject.
	PasswordHash string    // bcrypt hash of the user's password.
	FirstName    string
	LastName     string
	Roles        Roles     // The closed set of roles granted to this user.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasRole reports whether the user has been granted the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}
