package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// fakeAnalyticsRepo respuestas fijas para las tres consultas del dashboard.
type fakeAnalyticsRepo struct {
	revenue, received, due decimal.Decimal
	activeCustomers        int
	top                    []repository.CustomerRevenueResult

	metricsErr error
	countErr   error
	topErr     error
}

func (f *fakeAnalyticsRepo) GetRevenueMetrics(_ context.Context, _, _ time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	return f.revenue, f.received, f.due, f.metricsErr
}

func (f *fakeAnalyticsRepo) CountActiveCustomers(_ context.Context) (int, error) {
	return f.activeCustomers, f.countErr
}

func (f *fakeAnalyticsRepo) GetTopCustomers(_ context.Context, _, _ time.Time, limit int) ([]repository.CustomerRevenueResult, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDashboard_ResumenCompleto(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		revenue:         d("1000"),
		received:        d("750"),
		due:             d("250"),
		activeCustomers: 12,
		top: []repository.CustomerRevenueResult{
			{CustomerID: "c-1", CustomerName: "ISP Uno", TotalRevenue: d("600"), TotalReceived: d("500"), TotalDue: d("100"), BillCount: 2},
			{CustomerID: "c-2", CustomerName: "ISP Dos", TotalRevenue: d("400"), TotalReceived: d("250"), TotalDue: d("150"), BillCount: 1},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, out.MonthlyRevenue.Equal(d("1000")))
	assert.True(t, out.MonthlyReceived.Equal(d("750")))
	assert.True(t, out.MonthlyDue.Equal(d("250")))
	assert.True(t, out.CollectionRate.Equal(d("75")), "750/1000 × 100 = 75")
	assert.Equal(t, 12, out.ActiveCustomers)
	require.Len(t, out.TopCustomers, 2)
	assert.Equal(t, "c-1", out.TopCustomers[0].CustomerID,
		"el ranking conserva el orden por ingreso descendente")
}

func TestDashboard_SinFacturacionRateCero(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.CollectionRate.IsZero(),
		"sin facturado el collection rate es 0, no división por cero")
}

func TestDashboard_ErrorDeConsultaPropagado(t *testing.T) {
	repo := &fakeAnalyticsRepo{topErr: errors.New("boom")}
	uc := NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top clientes")
}
