package usecase

import (
	"context"
	"time"

	"krisefikser/internal/domain/entity"
)

// EventInput defines the data required to create or replace a crisis event.
type EventInput struct {
	Title       string
	Description string
	Latitude    float64
	Longitude   float64
	Radius      float64
	Severity    string
	StartTime   *time.Time
}

// EventUsecase defines the interface for crisis event business operations.
type EventUsecase interface {
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, id int64, input EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
