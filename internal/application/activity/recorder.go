// Package activity implementa el registro y la consulta del log de
// actividad (auditoría de escrituras).
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
	"github.com/jhoicas/netbill-api/pkg/logger"
)

// Recorder registra entradas de actividad en best-effort: un fallo al
// auditar se loguea pero nunca tumba la operación de negocio que lo originó.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada de actividad.
func (r *Recorder) Record(ctx context.Context, userID, action, entityName, entityID, detail string) {
	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		r.log.Warn().Err(err).
			Str("user_id", userID).
			Str("action", action).
			Str("entity", entityName).
			Msg("no se pudo registrar la actividad")
	}
}
