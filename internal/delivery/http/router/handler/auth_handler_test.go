package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "krisefikser/internal/delivery/context"
	"krisefikser/internal/delivery/http/middleware"
	"krisefikser/internal/delivery/http/validator"
	"krisefikser/internal/domain/entity"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubAuthUsecase lets each test script the usecase behavior.
type stubAuthUsecase struct {
	register    func(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenPairOutput, error)
	login       func(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error)
	refresh     func(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error)
	logout      func(ctx context.Context, refreshToken string) error
	currentUser func(ctx context.Context, email string) (*entity.User, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	return s.register(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	return s.login(ctx, input)
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	return s.refresh(ctx, refreshToken)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	return s.logout(ctx, refreshToken)
}

func (s *stubAuthUsecase) CurrentUser(ctx context.Context, email string) (*entity.User, error) {
	return s.currentUser(ctx, email)
}

// newTestEcho builds an echo instance with the production validator and
// error handler so handler errors surface as they would in the real server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func newAuthEcho(stub *stubAuthUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewAuthHandler(stub, slog.New(slog.DiscardHandler))
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/me", h.Me)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	var got usecase.RegisterInput
	e := newAuthEcho(&stubAuthUsecase{
		register: func(_ context.Context, input usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
			got = input

			return &usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	})

	rec := postJSON(e, "/auth/register", `{"email":"kari@example.com","password":"StrongPass123!","firstName":"Kari","lastName":"Nordmann"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kari@example.com", got.Email)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh"`)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newAuthEcho(&stubAuthUsecase{
		register: func(_ context.Context, _ usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
			t.Fatal("usecase must not be called on invalid input")

			return nil, nil
		},
	})

	// Missing email and a too-short password.
	rec := postJSON(e, "/auth/register", `{"password":"short","firstName":"Kari","lastName":"Nordmann"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_EmailInUse(t *testing.T) {
	e := newAuthEcho(&stubAuthUsecase{
		register: func(_ context.Context, _ usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
			return nil, domainerrors.ErrEmailInUse
		},
	})

	rec := postJSON(e, "/auth/register", `{"email":"kari@example.com","password":"StrongPass123!","firstName":"Kari","lastName":"Nordmann"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_IN_USE")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newAuthEcho(&stubAuthUsecase{
		login: func(_ context.Context, _ usecase.LoginInput) (*usecase.TokenPairOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	})

	rec := postJSON(e, "/auth/login", `{"email":"kari@example.com","password":"WrongPass123!"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Refresh_ConsumedToken(t *testing.T) {
	e := newAuthEcho(&stubAuthUsecase{
		refresh: func(_ context.Context, _ string) (*usecase.TokenPairOutput, error) {
			return nil, domainerrors.ErrRefreshTokenDoesNotExist
		},
	})

	rec := postJSON(e, "/auth/refresh", `{"refreshToken":"already-used"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked string
	e := newAuthEcho(&stubAuthUsecase{
		logout: func(_ context.Context, refreshToken string) error {
			revoked = refreshToken

			return nil
		},
	})

	rec := postJSON(e, "/auth/logout", `{"refreshToken":"some-token"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-token", revoked)
}

func TestAuthHandler_Me(t *testing.T) {
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "kari@example.com",
		FirstName: "Kari",
		LastName:  "Nordmann",
		Roles:     entity.Roles{entity.RoleUser},
	}
	stub := &stubAuthUsecase{
		currentUser: func(_ context.Context, email string) (*entity.User, error) {
			assert.Equal(t, "kari@example.com", email)

			return user, nil
		},
	}

	e := newTestEcho()
	h := NewAuthHandler(stub, slog.New(slog.DiscardHandler))
	// Simulate the auth middleware having attached the principal.
	e.GET("/auth/me", h.Me, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := deliverycontext.WithPrincipal(c.Request().Context(), &deliverycontext.Principal{
				Email: "kari@example.com",
				Roles: entity.Roles{entity.RoleUser},
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"kari@example.com"`)
	assert.Contains(t, rec.Body.String(), `"roles":["USER"]`)
	// The password hash never leaves the service.
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	e := newAuthEcho(&stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
