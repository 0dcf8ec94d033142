package repository

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role.
// GetPermissions devuelve la lista almacenada; el caller la convierte una
// sola vez en PermissionSet.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	GetPermissions(ctx context.Context, name string) ([]string, error)
	Save(ctx context.Context, role *entity.Role) error
}
