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

// mapPointTypeService implements the MapPointTypeUsecase interface.
type mapPointTypeService struct {
	mapPointTypeRepo repository.MapPointTypeRepository
	logger           *slog.Logger
}

// MapPointTypeServiceParams holds dependencies for mapPointTypeService, injected by Fx.
type MapPointTypeServiceParams struct {
	fx.In

	MapPointTypeRepo repository.MapPointTypeRepository
	Logger           *slog.Logger
}

// NewMapPointTypeService is the constructor for mapPointTypeService.
func NewMapPointTypeService(params MapPointTypeServiceParams) usecase.MapPointTypeUsecase {
	return &mapPointTypeService{
		mapPointTypeRepo: params.MapPointTypeRepo,
		logger:           params.Logger,
	}
}

func (srv *mapPointTypeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMapPointTypes returns every map point type.
func (srv *mapPointTypeService) ListMapPointTypes(ctx context.Context) ([]*entity.MapPointType, error) {
	mpts, err := srv.mapPointTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map point types")
	}

	return mpts, nil
}

// GetMapPointType returns a single map point type by its ID.
func (srv *mapPointTypeService) GetMapPointType(ctx context.Context, id int64) (*entity.MapPointType, error) {
	mpt, err := srv.mapPointTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMapPointTypeNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find map point type")
	}

	return mpt, nil
}

// CreateMapPointType persists a new map point type.
func (srv *mapPointTypeService) CreateMapPointType(ctx context.Context, input usecase.MapPointTypeInput) (*entity.MapPointType, error) {
	mpt := mapPointTypeFromInput(input)

	if err := srv.mapPointTypeRepo.Create(ctx, mpt); err != nil {
		return nil, errors.Wrap(err, "failed to create map point type")
	}

	srv.log(ctx).Info("Map point type created", slog.Int64("mapPointTypeID", mpt.ID), slog.String("title", mpt.Title))

	return mpt, nil
}

// UpdateMapPointType replaces the mutable fields of an existing map point type.
func (srv *mapPointTypeService) UpdateMapPointType(ctx context.Context, id int64, input usecase.MapPointTypeInput) (*entity.MapPointType, error) {
	mpt := mapPointTypeFromInput(input)
	mpt.ID = id

	if err := srv.mapPointTypeRepo.Update(ctx, mpt); err != nil {
		if errors.Is(err, repository.ErrMapPointTypeNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update map point type")
	}

	updated, err := srv.mapPointTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload map point type")
	}

	return updated, nil
}

// DeleteMapPointType removes a map point type by its ID.
func (srv *mapPointTypeService) DeleteMapPointType(ctx context.Context, id int64) error {
	if err := srv.mapPointTypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMapPointTypeNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete map point type")
	}

	srv.log(ctx).Info("Map point type deleted", slog.Int64("mapPointTypeID", id))

	return nil
}

func mapPointTypeFromInput(input usecase.MapPointTypeInput) *entity.MapPointType {
	return &entity.MapPointType{
		Title:       input.Title,
		IconURL:     input.IconURL,
		Description: input.Description,
		OpeningTime: input.OpeningTime,
	}
}
