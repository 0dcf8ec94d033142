package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository. Los permisos se almacenan
// como text[] y se escanean directo a []string.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByName obtiene un rol con sus permisos.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT name, permissions, created_at, updated_at FROM roles WHERE name = $1`
	var role entity.Role
	err := r.q.QueryRow(ctx, query, name).Scan(&role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetPermissions devuelve la lista de permisos de un rol. Rol inexistente
// devuelve lista vacía (el gate deniega por defecto).
func (r *RoleRepo) GetPermissions(ctx context.Context, name string) ([]string, error) {
	var perms []string
	err := r.q.QueryRow(ctx, `SELECT permissions FROM roles WHERE name = $1`, name).Scan(&perms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role permissions: %w", err)
	}
	return perms, nil
}

// Save inserta o actualiza un rol (upsert por nombre).
func (r *RoleRepo) Save(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (name, permissions, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (name) DO UPDATE SET permissions = EXCLUDED.permissions, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, role.Name, role.Permissions); err != nil {
		return fmt.Errorf("save role: %w", err)
	}
	return nil
}
