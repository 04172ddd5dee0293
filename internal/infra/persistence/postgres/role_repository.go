package postgres

import (
	"context"

	"krisefikser/internal/domain/entity"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByName retrieves a role by its name.
func (repo *roleRepository) FindByName(ctx context.Context, name entity.Role) (entity.Role, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).
		Where("name = ?", name.String()).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrRoleNotFound
		}

		return "", errors.WithStack(err)
	}

	return entity.Role(roleM.Name), nil
}
