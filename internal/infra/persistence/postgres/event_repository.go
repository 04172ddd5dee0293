package postgres

import (
	"context"

	"krisefikser/internal/domain/entity"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindAll retrieves every event, newest first.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	var eventModels []model.EventModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&eventModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, toEventDomain(&eventModels[i]))
	}

	return events, nil
}

// FindByID retrieves a single event by its ID.
func (repo *eventRepository) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	var eventM model.EventModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toEventDomain(&eventM), nil
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.WithStack(err)
	}

	// Update the entity with generated values.
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update modifies an existing event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", eventM.ID).
		Updates(map[string]any{
			"title":       eventM.Title,
			"description": eventM.Description,
			"latitude":    eventM.Latitude,
			"longitude":   eventM.Longitude,
			"radius":      eventM.Radius,
			"severity":    eventM.Severity,
			"start_time":  eventM.StartTime,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by its ID.
func (repo *eventRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Radius:      data.Radius,
		Severity:    data.Severity,
		StartTime:   data.StartTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Radius:      data.Radius,
		Severity:    data.Severity,
		StartTime:   data.StartTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
