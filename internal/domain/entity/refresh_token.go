// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one entry of the server-side allow-list of refresh tokens.
// The raw token string is the primary key; a value is valid exactly as long as
// its row exists and the embedded JWT has not expired. A refresh consumes the
// presented row and inserts a replacement.
type RefreshToken struct {
	Token     string    // The signed refresh token value itself.
	UserID    uuid.UUID // Owner reference; enables revoking every session of a user at once.
	ExpiresAt time.Time // Mirror of the JWT exp claim, kept so expired rows can be pruned.
	CreatedAt time.Time // Timestamp of when this session was created.
}
