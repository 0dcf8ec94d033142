package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate: total de factura (total_bill == round2(Σ precios), tolerancia 0.01)
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_CalculatedTotal_EsLaSumaRedondeada(t *testing.T) {
	tests := []struct {
		name     string
		f        billing.Figures
		expected string
	}{
		{
			name:     "seis precios enteros",
			f:        billing.Figures{IIG: dec("100"), FNA: dec("50"), GGC: dec("25"), CDN: dec("10"), BDIX: dec("5"), Baishan: dec("2")},
			expected: "192",
		},
		{
			name:     "precios con centavos se redondean a 2 decimales",
			f:        billing.Figures{IIG: dec("10.005"), FNA: dec("20.004")},
			expected: "30.01",
		},
		{
			name:     "todos en cero",
			f:        billing.Figures{},
			expected: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := billing.Evaluate(tt.f)
			assert.True(t, ev.CalculatedTotal.Equal(dec(tt.expected)),
				"calculated_total = %s, esperado %s", ev.CalculatedTotal, tt.expected)
		})
	}
}

func TestEvaluate_TotalCalculationStatus(t *testing.T) {
	base := billing.Figures{IIG: dec("100"), FNA: dec("50")} // suma = 150

	tests := []struct {
		name      string
		totalBill *decimal.Decimal
		expected  string
	}{
		{"total exacto", decPtr("150"), billing.StatusValid},
		{"dentro de la tolerancia (+0.01)", decPtr("150.01"), billing.StatusValid},
		{"dentro de la tolerancia (-0.01)", decPtr("149.99"), billing.StatusValid},
		{"fuera de la tolerancia", decPtr("150.02"), billing.StatusInvalid},
		{"total muy distinto", decPtr("200"), billing.StatusInvalid},
		{"total ausente: se autocompleta, nunca Invalid", nil, billing.StatusValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			f.TotalBill = tt.totalBill
			ev := billing.Evaluate(f)
			assert.Equal(t, tt.expected, ev.TotalCalculationStatus)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate: saldo pendiente (total_due == round2(max(0, total - recibido - desc)))
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_ExpectedDue(t *testing.T) {
	tests := []struct {
		name     string
		f        billing.Figures
		expected string
	}{
		{
			name:     "deuda simple",
			f:        billing.Figures{IIG: dec("100"), TotalReceived: dec("30"), Discount: dec("20")},
			expected: "50",
		},
		{
			name:     "sobrepago: la deuda queda en cero, nunca negativa",
			f:        billing.Figures{IIG: dec("100"), TotalReceived: dec("150")},
			expected: "0",
		},
		{
			name:     "descuento cubre el total",
			f:        billing.Figures{IIG: dec("80"), Discount: dec("100")},
			expected: "0",
		},
		{
			name:     "usa el total_bill explícito si viene (aunque no cuadre)",
			f:        billing.Figures{IIG: dec("100"), TotalBill: decPtr("200"), TotalReceived: dec("50")},
			expected: "150",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := billing.Evaluate(tt.f)
			assert.True(t, ev.ExpectedDue.Equal(dec(tt.expected)),
				"expected_due = %s, esperado %s", ev.ExpectedDue, tt.expected)
			assert.False(t, ev.ExpectedDue.IsNegative(), "expected_due nunca puede ser negativo")
		})
	}
}

func TestEvaluate_BalanceCalculationStatus(t *testing.T) {
	// total = 150, recibido = 80, descuento = 10 → deuda esperada = 60
	base := billing.Figures{IIG: dec("100"), FNA: dec("50"), TotalReceived: dec("80"), Discount: dec("10")}

	tests := []struct {
		name     string
		totalDue *decimal.Decimal
		expected string
	}{
		{"deuda exacta", decPtr("60"), billing.StatusValid},
		{"dentro de la tolerancia", decPtr("60.01"), billing.StatusValid},
		{"fuera de la tolerancia", decPtr("60.02"), billing.StatusInvalid},
		{"deuda ausente: se autocompleta", nil, billing.StatusValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			f.TotalDue = tt.totalDue
			ev := billing.Evaluate(f)
			assert.Equal(t, tt.expected, ev.BalanceCalculationStatus)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de la hoja de cálculo: precios {iig=100, fna=50, resto=0},
// recibido=80, descuento=10, totales omitidos → total=150, deuda=60.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckTotals_AutocompletaTotales(t *testing.T) {
	f := billing.Figures{
		IIG:           dec("100"),
		FNA:           dec("50"),
		TotalReceived: dec("80"),
		Discount:      dec("10"),
	}
	totalBill, totalDue, mismatch := billing.CheckTotals(f)
	require.Nil(t, mismatch)
	assert.True(t, totalBill.Equal(dec("150")), "total_bill = %s", totalBill)
	assert.True(t, totalDue.Equal(dec("60")), "total_due = %s", totalDue)
}

func TestCheckTotals_TotalExplicitoConflictivo(t *testing.T) {
	// total_bill=200 con suma de precios 150 → mismatch {200, 150, 50}
	f := billing.Figures{
		IIG:       dec("100"),
		FNA:       dec("50"),
		TotalBill: decPtr("200"),
	}
	_, _, mismatch := billing.CheckTotals(f)
	require.NotNil(t, mismatch)
	assert.True(t, mismatch.Provided.Equal(dec("200")))
	assert.True(t, mismatch.Calculated.Equal(dec("150")))
	assert.True(t, mismatch.Difference.Equal(dec("50")))
}

func TestCheckTotals_DeudaExplicitaConflictiva(t *testing.T) {
	f := billing.Figures{
		IIG:           dec("100"),
		TotalReceived: dec("40"),
		TotalDue:      decPtr("99"), // esperado: 60
	}
	_, _, mismatch := billing.CheckTotals(f)
	require.NotNil(t, mismatch)
	assert.True(t, mismatch.Provided.Equal(dec("99")))
	assert.True(t, mismatch.Calculated.Equal(dec("60")))
	assert.True(t, mismatch.Difference.Equal(dec("39")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia: re-evaluar la salida autocompletada da Valid en ambos estados.
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_IdempotenteSobreSalidaAutocompletada(t *testing.T) {
	f := billing.Figures{
		IIG:           dec("33.333"),
		FNA:           dec("66.667"),
		TotalReceived: dec("25.5"),
		Discount:      dec("4.5"),
	}
	totalBill, totalDue, mismatch := billing.CheckTotals(f)
	require.Nil(t, mismatch)

	f.TotalBill = &totalBill
	f.TotalDue = &totalDue
	ev := billing.Evaluate(f)
	assert.Equal(t, billing.StatusValid, ev.TotalCalculationStatus)
	assert.Equal(t, billing.StatusValid, ev.BalanceCalculationStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// FiguresFromBill: verificación batch sobre facturas persistidas.
// ──────────────────────────────────────────────────────────────────────────────

func TestFiguresFromBill_VerificacionBatch(t *testing.T) {
	bill := &entity.Bill{
		IIGPrice:      dec("100"),
		FNAPrice:      dec("50"),
		TotalBill:     dec("150"),
		TotalReceived: dec("80"),
		Discount:      dec("10"),
		TotalDue:      dec("60"),
	}
	ev := billing.Evaluate(billing.FiguresFromBill(bill))
	assert.Equal(t, billing.StatusValid, ev.TotalCalculationStatus)
	assert.Equal(t, billing.StatusValid, ev.BalanceCalculationStatus)

	// Una fila corrupta en DB se detecta en la verificación de lectura.
	bill.TotalDue = dec("999")
	ev = billing.Evaluate(billing.FiguresFromBill(bill))
	assert.Equal(t, billing.StatusInvalid, ev.BalanceCalculationStatus)
}
