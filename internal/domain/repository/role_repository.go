package repository

import (
	"context"

	"krisefikser/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRoleNotFound is returned when a role row is missing. Roles are seeded at
// startup, so hitting this at request time means the deployment is broken.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository resolves role names against the closed roles table.
type RoleRepository interface {
	// FindByName retrieves a role by its name, e.g. entity.RoleUser.
	FindByName(ctx context.Context, name entity.Role) (entity.Role, error)
}
