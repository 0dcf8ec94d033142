package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el dashboard. Solo cuenta facturas
// en estado Active, igual que el agregador de revenue en memoria.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetRevenueMetrics totales facturado/recibido/pendiente del período.
func (r *AnalyticsRepo) GetRevenueMetrics(ctx context.Context, start, end time.Time) (revenue, received, due decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(total_bill), 0),
			COALESCE(SUM(total_received), 0),
			COALESCE(SUM(total_due), 0)
		FROM bill_records
		WHERE status = $1 AND billing_date >= $2 AND billing_date <= $3`
	err = r.q.QueryRow(ctx, query, entity.BillStatusActive, start, end).Scan(&revenue, &received, &due)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("revenue metrics: %w", err)
	}
	return revenue, received, due, nil
}

// CountActiveCustomers clientes en estado Active.
func (r *AnalyticsRepo) CountActiveCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE status = $1`, entity.CustomerStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active customers: %w", err)
	}
	return count, nil
}

// GetTopCustomers ranking de clientes por ingreso del período, desempate
// por ID para mantener el orden estable.
func (r *AnalyticsRepo) GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]repository.CustomerRevenueResult, error) {
	query := `
		SELECT
			c.id, c.name,
			COALESCE(SUM(b.total_bill), 0),
			COALESCE(SUM(b.total_received), 0),
			COALESCE(SUM(b.total_due), 0),
			COUNT(b.id)
		FROM bill_records b
		JOIN customers c ON c.id = b.customer_id
		WHERE b.status = $1 AND b.billing_date >= $2 AND b.billing_date <= $3
		GROUP BY c.id, c.name
		ORDER BY SUM(b.total_bill) DESC, c.id
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, entity.BillStatusActive, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerRevenueResult
	for rows.Next() {
		var res repository.CustomerRevenueResult
		if err := rows.Scan(&res.CustomerID, &res.CustomerName, &res.TotalRevenue, &res.TotalReceived, &res.TotalDue, &res.BillCount); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
