// Package user implementa la gestión de usuarios y roles. Las reglas de
// quién puede tocar a quién viven en el gate de autorización.
package user

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/authz"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// UseCase casos de uso de administración de usuarios.
type UseCase struct {
	repo     repository.UserRepository
	recorder *activity.Recorder
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, recorder *activity.Recorder) *UseCase {
	return &UseCase{repo: repo, recorder: recorder}
}

// List lista usuarios (requiere rol elevado, que impone el router).
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, &dto.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario. Solo super_admin puede asignar
// super_admin o modificar a otro admin.
func (uc *UseCase) UpdateRole(ctx context.Context, callerID, callerRole, targetID, newRole string) error {
	target, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if !authz.CanManageUser(callerRole, target.Role) || !authz.CanAssignRole(callerRole, newRole) {
		return domain.ErrForbidden
	}
	if err := uc.repo.UpdateRole(ctx, targetID, newRole); err != nil {
		return err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionUpdate, "user", targetID, "rol → "+newRole)
	return nil
}

// Delete elimina un usuario. Solo super_admin puede eliminar a un admin.
func (uc *UseCase) Delete(ctx context.Context, callerID, callerRole, targetID string) error {
	target, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if !authz.CanManageUser(callerRole, target.Role) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, targetID); err != nil {
		return err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionDelete, "user", targetID, target.Email)
	return nil
}
