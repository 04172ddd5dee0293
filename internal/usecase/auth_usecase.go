// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"krisefikser/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenPairOutput returns the generated tokens after a successful
// registration, login or refresh.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with the USER role and signs it in.
	Register(ctx context.Context, input RegisterInput) (*TokenPairOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// Refresh rotates a refresh token. The presented token is consumed whether
	// or not a new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout revokes a refresh token. Unknown tokens are not an error.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser returns the account behind an authenticated principal's email.
	CurrentUser(ctx context.Context, email string) (*entity.User, error)
}
