package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// Ensure TxRunner implements billing.BillTxRunner.
var _ billing.BillTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBill inicia una transacción con los repos de factura y actividad, para
// que la escritura y su entrada de auditoría hagan Commit juntas.
func (r *TxRunner) RunBill(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	activityRepo repository.ActivityLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	billRepo := NewBillRepository(tx)
	activityRepo := NewActivityLogRepository(tx)

	if err := fn(billRepo, activityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
