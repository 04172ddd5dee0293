package repository

import (
	"context"

	"krisefikser/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for crisis event persistence.
type EventRepository interface {
	// FindAll retrieves every event, newest first.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// FindByID retrieves a single event by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// Update modifies an existing event. Returns ErrEventNotFound when absent.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event by its ID. Returns ErrEventNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
