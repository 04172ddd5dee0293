package impl

import (
	"context"
	"log/slog"

	deliverycontext "krisefikser/internal/delivery/context"
	"krisefikser/internal/domain/entity"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEvents returns every event, newest first.
func (srv *eventService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// GetEvent returns a single event by its ID.
func (srv *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// CreateEvent persists a new event.
func (srv *eventService) CreateEvent(ctx context.Context, input usecase.EventInput) (*entity.Event, error) {
	event := eventFromInput(input)

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Int64("eventID", event.ID), slog.String("severity", event.Severity))

	return event, nil
}

// UpdateEvent replaces the mutable fields of an existing event.
func (srv *eventService) UpdateEvent(ctx context.Context, id int64, input usecase.EventInput) (*entity.Event, error) {
	event := eventFromInput(input)
	event.ID = id

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update event")
	}

	// Re-read so the caller sees stored timestamps.
	updated, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload event")
	}

	return updated, nil
}

// DeleteEvent removes an event by its ID.
func (srv *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Int64("eventID", id))

	return nil
}

func eventFromInput(input usecase.EventInput) *entity.Event {
	return &entity.Event{
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Radius:      input.Radius,
		Severity:    input.Severity,
		StartTime:   input.StartTime,
	}
}
