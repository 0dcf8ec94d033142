package repository

import (
	"context"
	"time"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// BillFilter criterios de listado de facturas. Los campos en cero no filtran.
// From/To acotan billing_date de forma inclusiva. Limit <= 0 devuelve el
// conjunto completo sin paginar (agregación, verificación batch, exportación).
type BillFilter struct {
	CustomerID string
	Status     string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// BillRepository define el puerto de persistencia para Bill.
// El núcleo financiero nunca consulta por sí mismo: recibe las filas ya
// traídas por ListByFilter.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	ListByFilter(ctx context.Context, filter BillFilter) ([]*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id string) error
}
