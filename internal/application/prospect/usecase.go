// Package prospect implementa el CRUD de prospectos con fallback de
// propiedad: un usuario sin rol elevado solo accede a los suyos.
package prospect

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/authz"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// UseCase casos de uso de prospectos.
type UseCase struct {
	repo     repository.ProspectRepository
	recorder *activity.Recorder
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProspectRepository, recorder *activity.Recorder) *UseCase {
	return &UseCase{repo: repo, recorder: recorder}
}

// Create crea un prospecto propiedad del caller.
func (uc *UseCase) Create(ctx context.Context, callerID string, in dto.CreateProspectRequest) (*dto.ProspectResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.ProspectStatusNew
	}
	now := time.Now()
	p := &entity.Prospect{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Status:    status,
		CreatedBy: callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionCreate, "prospect", p.ID, p.Name)
	return toResponse(p), nil
}

// GetByID devuelve un prospecto si el caller es dueño o tiene rol elevado.
func (uc *UseCase) GetByID(ctx context.Context, callerID, callerRole, id string) (*dto.ProspectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.OwnsOrElevated(callerRole, callerID, p.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	return toResponse(p), nil
}

// List lista prospectos: todos para admin+, solo los propios para user.
func (uc *UseCase) List(ctx context.Context, callerID, callerRole string, limit, offset int) ([]*dto.ProspectResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var (
		list []*entity.Prospect
		err  error
	)
	if authz.IsElevated(callerRole) {
		list, err = uc.repo.ListAll(ctx, limit, offset)
	} else {
		list, err = uc.repo.ListByOwner(ctx, callerID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProspectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toResponse(p))
	}
	return out, nil
}

// Update reemplaza los campos del prospecto (dueño o rol elevado).
func (uc *UseCase) Update(ctx context.Context, callerID, callerRole, id string, in dto.UpdateProspectRequest) (*dto.ProspectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.OwnsOrElevated(callerRole, callerID, p.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.Notes = in.Notes
	if in.Status != "" {
		p.Status = in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionUpdate, "prospect", p.ID, "")
	return toResponse(p), nil
}

// Delete elimina el prospecto (dueño o rol elevado).
func (uc *UseCase) Delete(ctx context.Context, callerID, callerRole, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !authz.OwnsOrElevated(callerRole, callerID, p.CreatedBy) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionDelete, "prospect", id, p.Name)
	return nil
}

func toResponse(p *entity.Prospect) *dto.ProspectResponse {
	return &dto.ProspectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Notes:     p.Notes,
		Status:    p.Status,
		CreatedBy: p.CreatedBy,
	}
}
