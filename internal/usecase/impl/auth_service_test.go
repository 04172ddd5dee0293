package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"krisefikser/config"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/entity"
	"krisefikser/internal/domain/service"
	"krisefikser/internal/infra/auth"
	"krisefikser/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authTestEnv struct {
	svc          usecase.AuthUsecase
	userRepo     *fakeUserRepo
	tokenRepo    *fakeRefreshTokenRepo
	tokenService service.TokenService
}

func newAuthTestEnv(t *testing.T, tokenService service.TokenService) *authTestEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{
		Secret:                 "test_secret_key_very_long_for_testing",
		AccessTokenExpiration:  5 * 60 * 1000,
		RefreshTokenExpiration: 60 * 60 * 1000,
	}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	if tokenService == nil {
		var err error
		tokenService, err = auth.NewJWTService(cfg)
		require.NoError(t, err)
	}

	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	txManager := &fakeTxManager{
		userRepo:         userRepo,
		roleRepo:         newFakeRoleRepo(entity.RoleUser, entity.RoleAdmin),
		refreshTokenRepo: tokenRepo,
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: tokenRepo,
		Hasher:           auth.NewBcryptHasher(cfg),
		TokenService:     tokenService,
		Logger:           slog.New(slog.DiscardHandler),
	})

	return &authTestEnv{
		svc:          svc,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     "kari@example.com",
		Password:  "StrongPass123!",
		FirstName: "Kari",
		LastName:  "Nordmann",
	}
}

func TestAuthService_Register(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	output, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	// The refresh token is allow-listed immediately.
	record, err := env.tokenRepo.FindByToken(ctx, output.RefreshToken)
	require.NoError(t, err)

	// The account exists with the USER role and a hashed password.
	user, err := env.userRepo.FindByEmail(ctx, "kari@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, record.UserID)
	assert.True(t, user.HasRole(entity.RoleUser))
	assert.False(t, user.HasRole(entity.RoleAdmin))
	assert.NotEqual(t, "StrongPass123!", user.PasswordHash)

	// The access token carries the role claims.
	claims, err := env.tokenService.ValidateToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "kari@example.com", claims.Subject)
	assert.Equal(t, []string{"USER"}, claims.Roles)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestAuthService_Register_SigningFailureLeavesNothingBehind(t *testing.T) {
	env := newAuthTestEnv(t, failingTokenService{})
	ctx := context.Background()

	_, err := env.svc.Register(ctx, registerInput())
	require.Error(t, err)

	// The transaction rolled back, so neither the account nor a token exists.
	_, err = env.userRepo.FindByEmail(ctx, "kari@example.com")
	assert.Error(t, err)
	assert.Zero(t, env.tokenRepo.count())
}

func TestAuthService_Login(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	output, err := env.svc.Login(ctx, usecase.LoginInput{
		Email:    "kari@example.com",
		Password: "StrongPass123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)

	// Login opens a second session without touching the first.
	assert.NotEqual(t, registered.RefreshToken, output.RefreshToken)
	_, err = env.tokenRepo.FindByToken(ctx, output.RefreshToken)
	assert.NoError(t, err)
	_, err = env.tokenRepo.FindByToken(ctx, registered.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Wrong password and unknown account fail with the same error, so a
	// caller cannot probe which addresses are registered.
	_, wrongPassErr := env.svc.Login(ctx, usecase.LoginInput{
		Email:    "kari@example.com",
		Password: "WrongPass123!",
	})
	_, unknownErr := env.svc.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "StrongPass123!",
	})

	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	refreshed, err := env.svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old token is gone, the new one is allow-listed.
	_, err = env.tokenRepo.FindByToken(ctx, registered.RefreshToken)
	assert.Error(t, err)
	_, err = env.tokenRepo.FindByToken(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Refresh_ReplayFails(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = env.svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)

	_, err = env.svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenDoesNotExist)
}

func TestAuthService_Refresh_RevokedAndMalformedLookAlike(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)
	_, err = env.svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)

	_, revokedErr := env.svc.Refresh(ctx, registered.RefreshToken)
	_, malformedErr := env.svc.Refresh(ctx, "not-a-token")

	// Both failures present the identical HTTP surface.
	var revoked, malformed domainerrors.AppError
	require.ErrorAs(t, revokedErr, &revoked)
	require.ErrorAs(t, malformedErr, &malformed)
	assert.Equal(t, malformed.HTTPCode(), revoked.HTTPCode())
	assert.Equal(t, malformed.ErrorCode(), revoked.ErrorCode())
	assert.Equal(t, malformed.Message(), revoked.Message())
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = env.svc.Refresh(ctx, registered.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_Concurrent(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	const attempts = 16

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = env.svc.Refresh(ctx, registered.RefreshToken)
		}()
	}
	wg.Wait()

	// Exactly one refresh wins, the rest see the token as already consumed.
	var successes int
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenDoesNotExist)
		}
	}
	assert.Equal(t, 1, successes)

	// One allow-list entry remains: the winner's replacement.
	assert.Equal(t, 1, env.tokenRepo.count())
}

func TestAuthService_Logout(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, env.svc.Logout(ctx, registered.RefreshToken))

	// The revoked token can no longer be refreshed.
	_, err = env.svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenDoesNotExist)

	// Logging out twice is fine.
	assert.NoError(t, env.svc.Logout(ctx, registered.RefreshToken))
}

func TestAuthService_CurrentUser(t *testing.T) {
	env := newAuthTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, registerInput())
	require.NoError(t, err)

	user, err := env.svc.CurrentUser(ctx, "kari@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Kari", user.FirstName)
	assert.Equal(t, "Nordmann", user.LastName)

	_, err = env.svc.CurrentUser(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
