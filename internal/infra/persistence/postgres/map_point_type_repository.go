package postgres

import (
	"context"

	"krisefikser/internal/domain/entity"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mapPointTypeRepository implements the domain.MapPointTypeRepository interface.
type mapPointTypeRepository struct {
	db *gorm.DB
}

// NewMapPointTypeRepository is the constructor for mapPointTypeRepository.
func NewMapPointTypeRepository(db *gorm.DB) repository.MapPointTypeRepository {
	return &mapPointTypeRepository{db: db}
}

// FindAll retrieves every map point type.
func (repo *mapPointTypeRepository) FindAll(ctx context.Context) ([]*entity.MapPointType, error) {
	var mptModels []model.MapPointTypeModel

	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&mptModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mpts := make([]*entity.MapPointType, 0, len(mptModels))
	for i := range mptModels {
		mpts = append(mpts, toMapPointTypeDomain(&mptModels[i]))
	}

	return mpts, nil
}

// FindByID retrieves a single map point type by its ID.
func (repo *mapPointTypeRepository) FindByID(ctx context.Context, id int64) (*entity.MapPointType, error) {
	var mptM model.MapPointTypeModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mptM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMapPointTypeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toMapPointTypeDomain(&mptM), nil
}

// Create persists a new map point type.
func (repo *mapPointTypeRepository) Create(ctx context.Context, mpt *entity.MapPointType) error {
	mptM := fromMapPointTypeDomain(mpt)

	if err := repo.db.WithContext(ctx).Create(mptM).Error; err != nil {
		return errors.WithStack(err)
	}

	// Update the entity with generated values.
	mpt.ID = mptM.ID
	mpt.CreatedAt = mptM.CreatedAt
	mpt.UpdatedAt = mptM.UpdatedAt

	return nil
}

// Update modifies an existing map point type.
func (repo *mapPointTypeRepository) Update(ctx context.Context, mpt *entity.MapPointType) error {
	mptM := fromMapPointTypeDomain(mpt)

	result := repo.db.WithContext(ctx).
		Model(&model.MapPointTypeModel{}).
		Where("id = ?", mptM.ID).
		Updates(map[string]any{
			"title":        mptM.Title,
			"icon_url":     mptM.IconURL,
			"description":  mptM.Description,
			"opening_time": mptM.OpeningTime,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrMapPointTypeNotFound
	}

	return nil
}

// Delete removes a map point type by its ID.
func (repo *mapPointTypeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MapPointTypeModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrMapPointTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMapPointTypeDomain converts a GORM MapPointTypeModel to a domain MapPointType entity.
func toMapPointTypeDomain(data *model.MapPointTypeModel) *entity.MapPointType {
	if data == nil {
		return nil
	}

	return &entity.MapPointType{
		ID:          data.ID,
		Title:       data.Title,
		IconURL:     data.IconURL,
		Description: data.Description,
		OpeningTime: data.OpeningTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMapPointTypeDomain converts a domain MapPointType entity to a GORM MapPointTypeModel.
func fromMapPointTypeDomain(data *entity.MapPointType) *model.MapPointTypeModel {
	if data == nil {
		return nil
	}

	return &model.MapPointTypeModel{
		ID:          data.ID,
		Title:       data.Title,
		IconURL:     data.IconURL,
		Description: data.Description,
		OpeningTime: data.OpeningTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
