package repository

import (
	"context"

	"krisefikser/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMapPointTypeNotFound is returned when a map point type is not found.
var ErrMapPointTypeNotFound = errors.New("map point type not found")

// MapPointTypeRepository defines the standard operations for map point type persistence.
type MapPointTypeRepository interface {
	// FindAll retrieves every map point type.
	FindAll(ctx context.Context) ([]*entity.MapPointType, error)

	// FindByID retrieves a single map point type by its ID.
	FindByID(ctx context.Context, id int64) (*entity.MapPointType, error)

	// Create persists a new map point type.
	Create(ctx context.Context, mpt *entity.MapPointType) error

	// Update modifies an existing map point type. Returns ErrMapPointTypeNotFound when absent.
	Update(ctx context.Context, mpt *entity.MapPointType) error

	// Delete removes a map point type by its ID. Returns ErrMapPointTypeNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
