package usecase

import (
	"context"

	"krisefikser/internal/domain/entity"
)

// MapPointTypeInput defines the data required to create or replace a map point type.
type MapPointTypeInput struct {
	Title       string
	IconURL     string
	Description string
	OpeningTime string
}

// MapPointTypeUsecase defines the interface for map point type business operations.
type MapPointTypeUsecase interface {
	ListMapPointTypes(ctx context.Context) ([]*entity.MapPointType, error)
	GetMapPointType(ctx context.Context, id int64) (*entity.MapPointType, error)
	CreateMapPointType(ctx context.Context, input MapPointTypeInput) (*entity.MapPointType, error)
	UpdateMapPointType(ctx context.Context, id int64, input MapPointTypeInput) (*entity.MapPointType, error)
	DeleteMapPointType(ctx context.Context, id int64) error
}
