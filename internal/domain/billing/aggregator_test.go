package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func billOn(customerID, status, date string, total, received, due string) *entity.Bill {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &entity.Bill{
		CustomerID:    customerID,
		Status:        status,
		BillingDate:   d,
		TotalBill:     dec(total),
		TotalReceived: dec(received),
		TotalDue:      dec(due),
	}
}

func datePtr(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_PorMes_MismoMesUnSoloBucket(t *testing.T) {
	// Dos facturas Active del mismo cliente y mismo mes → un bucket con 300 y count 2.
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-03-05", "100", "100", "0"),
		billOn("c1", entity.BillStatusActive, "2024-03-28", "200", "50", "150"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-03", buckets[0].Key)
	assert.True(t, buckets[0].TotalRevenue.Equal(dec("300")))
	assert.True(t, buckets[0].TotalReceived.Equal(dec("150")))
	assert.True(t, buckets[0].TotalDue.Equal(dec("150")))
	assert.Equal(t, 2, buckets[0].BillCount)
}

func TestAggregate_PorMes_OrdenAscendentePorClave(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-11-01", "10", "0", "10"),
		billOn("c2", entity.BillStatusActive, "2024-01-15", "20", "0", "20"),
		billOn("c3", entity.BillStatusActive, "2024-06-30", "30", "0", "30"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Key)
	assert.Equal(t, "2024-06", buckets[1].Key)
	assert.Equal(t, "2024-11", buckets[2].Key)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros: estado y rango de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SoloFacturasActive(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-03-01", "100", "0", "100"),
		billOn("c1", entity.BillStatusInactive, "2024-03-02", "999", "0", "999"),
		billOn("c1", entity.BillStatusTerminated, "2024-03-03", "999", "0", "999"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})
	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].TotalRevenue.Equal(dec("100")))
	assert.Equal(t, 1, buckets[0].BillCount)
}

func TestAggregate_RangoDeFechasInclusivo(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-02-29", "1", "0", "1"), // fuera
		billOn("c1", entity.BillStatusActive, "2024-03-01", "2", "0", "2"), // borde inicio
		billOn("c1", entity.BillStatusActive, "2024-03-31", "4", "0", "4"), // borde fin
		billOn("c1", entity.BillStatusActive, "2024-04-01", "8", "0", "8"), // fuera
	}
	r := billing.DateRange{Start: datePtr("2024-03-01"), End: datePtr("2024-03-31")}
	buckets := billing.Aggregate(bills, billing.GroupByMonth, r)
	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].TotalRevenue.Equal(dec("6")), "solo los bordes inclusivos: 2+4")
}

// ──────────────────────────────────────────────────────────────────────────────
// Semana ISO y año
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_PorSemanaISO(t *testing.T) {
	// 2024-01-01 cae en la semana ISO 1 de 2024; 2023-01-01 en la semana 52 de 2022.
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-01-01", "10", "0", "10"),
		billOn("c1", entity.BillStatusActive, "2023-01-01", "20", "0", "20"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByWeek, billing.DateRange{})
	require.Len(t, buckets, 2)
	assert.Equal(t, "2022-W52", buckets[0].Key)
	assert.Equal(t, "2024-W01", buckets[1].Key)
}

func TestAggregate_PorAnio(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2023-06-01", "100", "0", "100"),
		billOn("c1", entity.BillStatusActive, "2024-06-01", "200", "0", "200"),
		billOn("c2", entity.BillStatusActive, "2024-12-31", "50", "0", "50"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByYear, billing.DateRange{})
	require.Len(t, buckets, 2)
	assert.Equal(t, "2023", buckets[0].Key)
	assert.Equal(t, "2024", buckets[1].Key)
	assert.True(t, buckets[1].TotalRevenue.Equal(dec("250")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación por cliente: total_revenue descendente, desempate por id
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_PorCliente_OrdenPorIngresoDescendente(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-03-01", "100", "0", "100"),
		billOn("c2", entity.BillStatusActive, "2024-03-01", "300", "0", "300"),
		billOn("c3", entity.BillStatusActive, "2024-03-01", "200", "0", "200"),
		billOn("c1", entity.BillStatusActive, "2024-04-01", "250", "0", "250"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByCustomer, billing.DateRange{})
	require.Len(t, buckets, 3)
	assert.Equal(t, "c1", buckets[0].Key) // 350
	assert.Equal(t, "c2", buckets[1].Key) // 300
	assert.Equal(t, "c3", buckets[2].Key) // 200
}

func TestAggregate_PorCliente_DesempatePorID(t *testing.T) {
	bills := []*entity.Bill{
		billOn("zeta", entity.BillStatusActive, "2024-03-01", "100", "0", "100"),
		billOn("alfa", entity.BillStatusActive, "2024-03-01", "100", "0", "100"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByCustomer, billing.DateRange{})
	require.Len(t, buckets, 2)
	assert.Equal(t, "alfa", buckets[0].Key)
	assert.Equal(t, "zeta", buckets[1].Key)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades: conservación de sumas y determinismo
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_ConservaLaSumaDeLosFiltrados(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c1", entity.BillStatusActive, "2024-01-10", "123.45", "100", "23.45"),
		billOn("c2", entity.BillStatusActive, "2024-02-20", "678.90", "600", "78.90"),
		billOn("c3", entity.BillStatusInactive, "2024-02-21", "55.55", "0", "55.55"),
		billOn("c1", entity.BillStatusActive, "2024-03-05", "10.00", "10", "0"),
	}
	buckets := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})

	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.TotalRevenue)
	}
	// Σ buckets == Σ facturas Active (la Inactive no cuenta)
	assert.True(t, sum.Equal(dec("812.35")), "suma de buckets = %s", sum)
}

func TestAggregate_Determinista(t *testing.T) {
	bills := []*entity.Bill{
		billOn("c3", entity.BillStatusActive, "2024-05-01", "10", "1", "9"),
		billOn("c1", entity.BillStatusActive, "2024-03-01", "20", "2", "18"),
		billOn("c2", entity.BillStatusActive, "2024-04-01", "30", "3", "27"),
	}
	first := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})
	for i := 0; i < 50; i++ {
		again := billing.Aggregate(bills, billing.GroupByMonth, billing.DateRange{})
		require.Equal(t, first, again, "el mismo input debe producir el mismo output")
	}
}

func TestAggregate_SinFacturas(t *testing.T) {
	buckets := billing.Aggregate(nil, billing.GroupByMonth, billing.DateRange{})
	assert.Empty(t, buckets)
}

// ──────────────────────────────────────────────────────────────────────────────
// Collection rate
// ──────────────────────────────────────────────────────────────────────────────

func TestCollectionRate(t *testing.T) {
	b := billing.RevenueBucket{TotalRevenue: dec("200"), TotalReceived: dec("150")}
	assert.True(t, b.CollectionRate().Equal(dec("75")))

	empty := billing.RevenueBucket{TotalRevenue: decimal.Zero}
	assert.True(t, empty.CollectionRate().IsZero(), "sin ingresos el rate es 0, no división por cero")
}
