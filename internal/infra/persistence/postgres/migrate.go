package postgres

import (
	"context"

	"krisefikser/internal/domain/entity"
	"krisefikser/internal/errors"
	"krisefikser/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// migrate brings the schema up to date and seeds the closed role set.
// AutoMigrate only adds missing tables, columns and indexes, so running it on
// every start is safe.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.RoleModel{},
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.EventModel{},
		&model.MapPointTypeModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return seedRoles(ctx, db)
}

// seedRoles inserts the USER and ADMIN rows if they are missing.
func seedRoles(ctx context.Context, db *gorm.DB) error {
	roles := []model.RoleModel{
		{Name: entity.RoleUser.String()},
		{Name: entity.RoleAdmin.String()},
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&roles).Error
	if err != nil {
		return errors.Wrap(err, "seed roles")
	}

	return nil
}
