// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "krisefikser/internal/delivery/context"
	"krisefikser/internal/domain/entity"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/domain/service"
	"krisefikser/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with the USER role and opens its first session.
// Everything runs in one transaction, so a signing failure leaves no account behind.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to hash password")
	}

	var output *usecase.TokenPairOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		role, err := roleRepo.FindByName(ctx, entity.RoleUser)
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find default role")
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: passwordHash,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Roles:        entity.Roles{role},
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailInUse
			}

			return errors.Wrap(err, "failed to create user")
		}

		output, err = srv.issueTokens(ctx, repoFactory.RefreshTokenRepo(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", input.Email))

	return output, nil
}

// Login verifies credentials and opens a new session. A missing account and a
// wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issueTokens(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		srv.log(ctx).Error("Failed to open session", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.String("email", input.Email))

	return output, nil
}

// Refresh rotates a refresh token. The consume and the re-issue share one
// transaction, so of N concurrent refreshes of the same token exactly one
// succeeds and the rest observe the row as already gone.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrInvalidToken
	}

	var output *usecase.TokenPairOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshTokenRepo := repoFactory.RefreshTokenRepo()

		// Consume the presented token. Single use hinges on this delete.
		if err := refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenDoesNotExist
			}

			return errors.Wrap(err, "failed to consume refresh token")
		}

		user, err := repoFactory.UserRepo().FindByEmail(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to find user")
		}

		output, err = srv.issueTokens(ctx, refreshTokenRepo, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes a refresh token. Revoking an unknown token is a no-op, so
// logout is idempotent.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.Delete(ctx, refreshToken)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// CurrentUser returns the account behind an authenticated principal's email.
func (srv *authService) CurrentUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// issueTokens generates a token pair for the user and allow-lists the refresh half.
func (srv *authService) issueTokens(ctx context.Context, refreshTokenRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.Email, user.Roles.ToStrings())
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to sign tokens")
	}

	record := &entity.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshTokenRepo.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
