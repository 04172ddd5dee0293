// Package worker contains background deliveries that run alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"krisefikser/config"
	"krisefikser/internal/delivery"
	"krisefikser/internal/domain/repository"

	"go.uber.org/fx"
)

const defaultCleanupInterval = time.Hour

// tokenJanitor periodically deletes expired refresh tokens. Expired rows are
// already unusable (the JWT expiry check rejects them first), so this is pure
// housekeeping to keep the allow-list table small.
type tokenJanitor struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
	interval         time.Duration
	stop             context.CancelFunc
	stopped          context.Context
}

// JanitorParams holds dependencies for the token janitor
type JanitorParams struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	RefreshTokenRepo repository.RefreshTokenRepository
}

// NewTokenJanitor creates the refresh token cleanup delivery.
func NewTokenJanitor(params JanitorParams) (delivery.Delivery, error) {
	interval := defaultCleanupInterval
	if params.Cfg.Auth != nil && params.Cfg.Auth.TokenCleanupInterval > 0 {
		interval = params.Cfg.Auth.TokenCleanupInterval
	}

	stopped, stop := context.WithCancel(context.Background())
	janitor := &tokenJanitor{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
		interval:         interval,
		stop:             stop,
		stopped:          stopped,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stop()

			return nil
		},
	})

	return janitor, nil
}

// Serve runs the cleanup loop until the application shuts down.
func (j *tokenJanitor) Serve(ctx context.Context) error {
	j.logger.Info("Starting refresh token janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopped.Done():
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *tokenJanitor) sweep(ctx context.Context) {
	removed, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		j.logger.Error("Failed to delete expired refresh tokens", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Deleted expired refresh tokens", slog.Int64("count", removed))
	}
}
