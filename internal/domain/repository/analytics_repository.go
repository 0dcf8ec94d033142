package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRevenueResult fila del ranking de clientes por ingresos.
type CustomerRevenueResult struct {
	CustomerID    string
	CustomerName  string
	TotalRevenue  decimal.Decimal
	TotalReceived decimal.Decimal
	TotalDue      decimal.Decimal
	BillCount     int
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
// Todas excluyen facturas que no estén en estado Active.
type AnalyticsRepository interface {
	// GetRevenueMetrics totales facturado/recibido/pendiente del período.
	GetRevenueMetrics(ctx context.Context, start, end time.Time) (revenue, received, due decimal.Decimal, err error)
	// CountActiveCustomers clientes en estado Active.
	CountActiveCustomers(ctx context.Context) (int, error)
	// GetTopCustomers los `limit` clientes con mayor ingreso del período.
	GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]CustomerRevenueResult, error)
}
