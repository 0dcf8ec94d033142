package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

const billColumns = `id, customer_id, iig_price, fna_price, ggc_price, cdn_price, bdix_price, baishan_price,
	discount, total_bill, total_received, total_due, status, billing_date, active_date, termination_date,
	created_by, created_at, updated_at`

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste una factura nueva.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bill_records (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		bill.ID, bill.CustomerID,
		bill.IIGPrice, bill.FNAPrice, bill.GGCPrice, bill.CDNPrice, bill.BDIXPrice, bill.BaishanPrice,
		bill.Discount, bill.TotalBill, bill.TotalReceived, bill.TotalDue,
		bill.Status, bill.BillingDate, bill.ActiveDate, bill.TerminationDate,
		bill.CreatedBy, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *BillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bill_records WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// ListByFilter lista facturas según el filtro. Limit <= 0 no pagina (lo usa
// el agregador, que necesita el conjunto completo del rango).
func (r *BillRepo) ListByFilter(ctx context.Context, filter repository.BillFilter) ([]*entity.Bill, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.CustomerID != "" {
		conds = append(conds, "customer_id = "+arg(filter.CustomerID))
	}
	if filter.Status != "" {
		conds = append(conds, "status = "+arg(filter.Status))
	}
	if filter.From != nil {
		conds = append(conds, "billing_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "billing_date <= "+arg(*filter.To))
	}

	query := `SELECT ` + billColumns + ` FROM bill_records`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY billing_date, id"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var list []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos de la factura.
func (r *BillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	query := `
		UPDATE bill_records SET
			customer_id = $2, iig_price = $3, fna_price = $4, ggc_price = $5, cdn_price = $6,
			bdix_price = $7, baishan_price = $8, discount = $9, total_bill = $10,
			total_received = $11, total_due = $12, status = $13, billing_date = $14,
			active_date = $15, termination_date = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		bill.ID, bill.CustomerID,
		bill.IIGPrice, bill.FNAPrice, bill.GGCPrice, bill.CDNPrice, bill.BDIXPrice, bill.BaishanPrice,
		bill.Discount, bill.TotalBill, bill.TotalReceived, bill.TotalDue,
		bill.Status, bill.BillingDate, bill.ActiveDate, bill.TerminationDate, bill.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *BillRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bill_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	err := row.Scan(
		&b.ID, &b.CustomerID,
		&b.IIGPrice, &b.FNAPrice, &b.GGCPrice, &b.CDNPrice, &b.BDIXPrice, &b.BaishanPrice,
		&b.Discount, &b.TotalBill, &b.TotalReceived, &b.TotalDue,
		&b.Status, &b.BillingDate, &b.ActiveDate, &b.TerminationDate,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
