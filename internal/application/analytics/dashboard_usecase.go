// Package analytics contiene el caso de uso del dashboard financiero.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

const dashboardTopCustomers = 5 // filas del ranking de clientes del dashboard

// DashboardUseCase genera el resumen financiero del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No toca la
// tabla de facturas directamente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetRevenueMetrics(mes)   → facturado / recibido / pendiente
//  2. CountActiveCustomers()   → clientes activos
//  3. GetTopCustomers(mes, 5)  → ranking
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59.999
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type metricsResult struct {
		revenue, received, due decimal.Decimal
		err                    error
	}
	type countResult struct {
		n   int
		err error
	}
	type topResult struct {
		rows []repository.CustomerRevenueResult
		err  error
	}

	metricsCh := make(chan metricsResult, 1)
	countCh := make(chan countResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		revenue, received, due, err := uc.analyticsRepo.GetRevenueMetrics(ctx, monthStart, monthEnd)
		metricsCh <- metricsResult{revenue, received, due, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountActiveCustomers(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopCustomers(ctx, monthStart, monthEnd, dashboardTopCustomers)
		topCh <- topResult{rows, err}
	}()

	metrics := <-metricsCh
	count := <-countCh
	top := <-topCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", metrics.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: clientes activos: %w", count.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", top.err)
	}

	// Collection rate = recibido / facturado × 100 (0 si no hay facturación).
	rate := decimal.Zero
	if !metrics.revenue.IsZero() {
		rate = metrics.received.Div(metrics.revenue).Mul(decimal.New(100, 0)).Round(2)
	}

	topCustomers := make([]dto.TopCustomerDTO, 0, len(top.rows))
	for _, r := range top.rows {
		topCustomers = append(topCustomers, dto.TopCustomerDTO{
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			TotalRevenue:  r.TotalRevenue,
			TotalReceived: r.TotalReceived,
			TotalDue:      r.TotalDue,
			BillCount:     r.BillCount,
		})
	}

	return &dto.DashboardSummaryDTO{
		MonthlyRevenue:  metrics.revenue,
		MonthlyReceived: metrics.received,
		MonthlyDue:      metrics.due,
		CollectionRate:  rate,
		ActiveCustomers: count.n,
		TopCustomers:    topCustomers,
	}, nil
}
