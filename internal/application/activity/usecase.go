package activity

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/authz"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// UseCase consulta y purga del log de actividad.
type UseCase struct {
	repo repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ActivityLogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve el log: completo para admin+, solo el propio para user.
func (uc *UseCase) List(ctx context.Context, callerID, callerRole string, limit, offset int) ([]*dto.ActivityLogResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var (
		list []*entity.ActivityLog
		err  error
	)
	if authz.IsElevated(callerRole) {
		list, err = uc.repo.ListAll(ctx, limit, offset)
	} else {
		list, err = uc.repo.ListByUser(ctx, callerID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, &dto.ActivityLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}

// Purge vacía el log completo. Reservado a super_admin.
func (uc *UseCase) Purge(ctx context.Context, callerRole string) error {
	if !authz.CanPurgeLogs(callerRole) {
		return domain.ErrForbidden
	}
	return uc.repo.Purge(ctx)
}
