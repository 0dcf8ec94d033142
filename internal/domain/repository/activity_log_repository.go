package repository

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// ActivityLogRepository define el puerto de persistencia para ActivityLog.
// Purge vacía el log completo (solo super_admin, ver authz.CanPurgeLogs).
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	ListAll(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ActivityLog, error)
	Purge(ctx context.Context) error
}
