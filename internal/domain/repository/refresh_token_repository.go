// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"krisefikser/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not in the allow-list.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExists is returned on duplicate insertion of a token value.
	ErrRefreshTokenExists = errors.New("refresh token already exists")
)

// RefreshTokenRepository is the server-side allow-list of refresh tokens,
// keyed by the token value. It is the serialization point of token rotation:
// Delete reports ErrRefreshTokenNotFound when the row is already gone, which
// is what guarantees that two concurrent refreshes of the same value cannot
// both succeed.
type RefreshTokenRepository interface {
	// Save inserts a new allow-list entry. Returns ErrRefreshTokenExists when
	// the token value is already present.
	Save(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves an entry by its token value.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Delete removes an entry by its token value. Returns
	// ErrRefreshTokenNotFound when no row was deleted.
	Delete(ctx context.Context, token string) error

	// DeleteByUserID removes every entry owned by a user, ending all of their
	// sessions at once.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes entries whose expiry has passed and reports how
	// many were removed. Called periodically by the token janitor.
	DeleteExpired(ctx context.Context) (int64, error)
}
