package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación de ActivityLogRepository.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta una entrada de auditoría.
func (r *ActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, entity, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.UserID, log.Action, log.Entity, log.EntityID, log.Detail, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListAll lista todas las entradas, más recientes primero.
func (r *ActivityLogRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, entity, entity_id, detail, created_at
		FROM activity_logs
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	return collectLogs(rows)
}

// ListByUser lista las entradas de un usuario, más recientes primero.
func (r *ActivityLogRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, entity, entity_id, detail, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs by user: %w", err)
	}
	defer rows.Close()
	return collectLogs(rows)
}

// Purge vacía el log completo.
func (r *ActivityLogRepo) Purge(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM activity_logs`); err != nil {
		return fmt.Errorf("purge activity logs: %w", err)
	}
	return nil
}

func collectLogs(rows pgx.Rows) ([]*entity.ActivityLog, error) {
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Entity, &l.EntityID, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
