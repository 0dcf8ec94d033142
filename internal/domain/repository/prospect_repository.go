package repository

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// ProspectRepository define el puerto de persistencia para Prospect.
type ProspectRepository interface {
	Create(ctx context.Context, prospect *entity.Prospect) error
	GetByID(ctx context.Context, id string) (*entity.Prospect, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Prospect, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Prospect, error)
	Update(ctx context.Context, prospect *entity.Prospect) error
	Delete(ctx context.Context, id string) error
}
