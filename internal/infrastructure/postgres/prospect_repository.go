package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

var _ repository.ProspectRepository = (*ProspectRepo)(nil)

const prospectColumns = `id, name, email, phone, notes, status, created_by, created_at, updated_at`

// ProspectRepo implementación de ProspectRepository.
type ProspectRepo struct {
	q Querier
}

// NewProspectRepository construye el adaptador.
func NewProspectRepository(q Querier) *ProspectRepo {
	return &ProspectRepo{q: q}
}

// Create persiste un prospecto nuevo.
func (r *ProspectRepo) Create(ctx context.Context, prospect *entity.Prospect) error {
	query := `
		INSERT INTO prospects (` + prospectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		prospect.ID, prospect.Name, prospect.Email, prospect.Phone, prospect.Notes,
		prospect.Status, prospect.CreatedBy, prospect.CreatedAt, prospect.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prospect: %w", err)
	}
	return nil
}

// GetByID obtiene un prospecto por ID.
func (r *ProspectRepo) GetByID(ctx context.Context, id string) (*entity.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM prospects WHERE id = $1`
	p, err := scanProspect(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prospect: %w", err)
	}
	return p, nil
}

// ListAll lista todos los prospectos (roles elevados).
func (r *ProspectRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM prospects ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()
	return collectProspects(rows)
}

// ListByOwner lista los prospectos creados por un usuario.
func (r *ProspectRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Prospect, error) {
	query := `
		SELECT ` + prospectColumns + ` FROM prospects
		WHERE created_by = $1
		ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prospects by owner: %w", err)
	}
	defer rows.Close()
	return collectProspects(rows)
}

// Update reemplaza los campos editables del prospecto.
func (r *ProspectRepo) Update(ctx context.Context, prospect *entity.Prospect) error {
	query := `
		UPDATE prospects SET
			name = $2, email = $3, phone = $4, notes = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		prospect.ID, prospect.Name, prospect.Email, prospect.Phone, prospect.Notes,
		prospect.Status, prospect.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prospect: %w", err)
	}
	return nil
}

// Delete elimina un prospecto por ID.
func (r *ProspectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM prospects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete prospect: %w", err)
	}
	return nil
}

func collectProspects(rows pgx.Rows) ([]*entity.Prospect, error) {
	var list []*entity.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProspect(row pgx.Row) (*entity.Prospect, error) {
	var p entity.Prospect
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Notes,
		&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
