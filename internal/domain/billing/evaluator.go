// Package billing contiene el núcleo financiero del sistema: la validación
// cruzada de totales de factura y la agregación de ingresos por período.
//
// Ambas piezas son funciones puras sobre datos ya materializados; no hacen
// I/O ni guardan estado entre peticiones.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// Estados del resultado de la validación cruzada.
const (
	StatusValid   = "Valid"
	StatusInvalid = "Invalid"
)

// tolerance margen de redondeo aceptado entre el valor declarado y el calculado.
var tolerance = decimal.New(1, -2) // 0.01

// Figures son las cifras de una factura tal como llegan del caller.
// TotalBill y TotalDue son punteros: nil significa "no provisto" y el
// evaluador los autocompleta en lugar de marcarlos inválidos.
type Figures struct {
	IIG           decimal.Decimal
	FNA           decimal.Decimal
	GGC           decimal.Decimal
	CDN           decimal.Decimal
	BDIX          decimal.Decimal
	Baishan       decimal.Decimal
	Discount      decimal.Decimal
	TotalReceived decimal.Decimal
	TotalBill     *decimal.Decimal
	TotalDue      *decimal.Decimal
}

// FiguresFromBill adapta una factura persistida para la verificación batch.
func FiguresFromBill(b *entity.Bill) Figures {
	totalBill := b.TotalBill
	totalDue := b.TotalDue
	return Figures{
		IIG:           b.IIGPrice,
		FNA:           b.FNAPrice,
		GGC:           b.GGCPrice,
		CDN:           b.CDNPrice,
		BDIX:          b.BDIXPrice,
		Baishan:       b.BaishanPrice,
		Discount:      b.Discount,
		TotalReceived: b.TotalReceived,
		TotalBill:     &totalBill,
		TotalDue:      &totalDue,
	}
}

// Evaluation es el resultado de la validación cruzada de una factura.
type Evaluation struct {
	CalculatedTotal          decimal.Decimal
	TotalCalculationStatus   string // Valid | Invalid
	ExpectedDue              decimal.Decimal
	BalanceCalculationStatus string // Valid | Invalid
}

// Evaluate aplica las dos reglas financieras sobre las cifras:
//
//	total_bill == round2(Σ seis precios)                       (tolerancia 0.01)
//	total_due  == round2(max(0, total - recibido - descuento)) (tolerancia 0.01)
//
// Un total ausente se autocompleta con el valor calculado y nunca se marca
// inválido. Los campos numéricos omitidos valen cero (zero value de Decimal).
func Evaluate(f Figures) Evaluation {
	calculated := round2(f.IIG.Add(f.FNA).Add(f.GGC).Add(f.CDN).Add(f.BDIX).Add(f.Baishan))

	totalStatus := StatusValid
	effectiveTotal := calculated
	if f.TotalBill != nil {
		effectiveTotal = *f.TotalBill
		if f.TotalBill.Sub(calculated).Abs().GreaterThan(tolerance) {
			totalStatus = StatusInvalid
		}
	}

	expectedDue := effectiveTotal.Sub(f.TotalReceived).Sub(f.Discount)
	if expectedDue.IsNegative() {
		// Sobrepago: estado válido, la deuda queda en cero (no se clampa el recibido).
		expectedDue = decimal.Zero
	}
	expectedDue = round2(expectedDue)

	balanceStatus := StatusValid
	if f.TotalDue != nil && f.TotalDue.Sub(expectedDue).Abs().GreaterThan(tolerance) {
		balanceStatus = StatusInvalid
	}

	return Evaluation{
		CalculatedTotal:          calculated,
		TotalCalculationStatus:   totalStatus,
		ExpectedDue:              expectedDue,
		BalanceCalculationStatus: balanceStatus,
	}
}

// Mismatch describe un conflicto entre un total declarado y el calculado.
// Se serializa en el cuerpo del error 400 CALCULATION_ERROR.
type Mismatch struct {
	Provided   decimal.Decimal `json:"provided"`
	Calculated decimal.Decimal `json:"calculated"`
	Difference decimal.Decimal `json:"difference"`
}

// CheckTotals valida las cifras como gate de escritura. Si un total explícito
// contradice el calculado devuelve el Mismatch correspondiente (primero el
// total, luego el saldo); si todo cuadra devuelve los totales efectivos ya
// autocompletados.
func CheckTotals(f Figures) (totalBill, totalDue decimal.Decimal, mismatch *Mismatch) {
	ev := Evaluate(f)
	if ev.TotalCalculationStatus == StatusInvalid {
		return decimal.Zero, decimal.Zero, &Mismatch{
			Provided:   *f.TotalBill,
			Calculated: ev.CalculatedTotal,
			Difference: f.TotalBill.Sub(ev.CalculatedTotal).Abs(),
		}
	}
	if ev.BalanceCalculationStatus == StatusInvalid {
		return decimal.Zero, decimal.Zero, &Mismatch{
			Provided:   *f.TotalDue,
			Calculated: ev.ExpectedDue,
			Difference: f.TotalDue.Sub(ev.ExpectedDue).Abs(),
		}
	}
	totalBill = ev.CalculatedTotal
	if f.TotalBill != nil {
		totalBill = *f.TotalBill
	}
	totalDue = ev.ExpectedDue
	if f.TotalDue != nil {
		totalDue = *f.TotalDue
	}
	return totalBill, totalDue, nil
}

// round2 redondea a dos decimales (half-up, convención monetaria).
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
