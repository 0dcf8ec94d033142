// Package bulk implementa la importación y exportación masiva de facturas
// (CSV hacia adentro; CSV, XML y PDF hacia afuera).
package bulk

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	corebilling "github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// billCSVHeader columnas esperadas del CSV de importación, en cualquier orden.
// serial_number identifica al cliente; total_bill/total_due son opcionales y
// se autocompletan si la celda viene vacía.
var billCSVHeader = []string{
	"serial_number", "billing_date",
	"iig_price", "fna_price", "ggc_price", "cdn_price", "bdix_price", "baishan_price",
	"discount", "total_received", "total_bill", "total_due", "status",
}

// RowError error de una fila concreta del archivo importado.
type RowError struct {
	Row     int    `json:"row"` // 1-based, sin contar el header
	Message string `json:"message"`
}

// ImportReport resultado de la importación: filas válidas insertadas, las
// inválidas reportadas una a una.
type ImportReport struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors,omitempty"`
}

// ImportUseCase importación de facturas desde CSV.
type ImportUseCase struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	recorder     *activity.Recorder
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(billRepo repository.BillRepository, customerRepo repository.CustomerRepository, recorder *activity.Recorder) *ImportUseCase {
	return &ImportUseCase{billRepo: billRepo, customerRepo: customerRepo, recorder: recorder}
}

// ImportBillsCSV lee el CSV y persiste cada fila que pase el gate financiero.
// La importación no es atómica: las filas válidas se insertan aunque otras
// fallen, y cada fallo queda en el reporte con su número de fila.
func (uc *ImportUseCase) ImportBillsCSV(ctx context.Context, callerID string, r io.Reader) (*ImportReport, error) {
	normalized, err := normalizeCSV(r)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(normalized)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leer header CSV: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"serial_number", "billing_date"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("columna requerida ausente: %s", required)
		}
	}

	report := &ImportReport{}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: row, Message: err.Error()})
			continue
		}
		if err := uc.importRow(ctx, callerID, cols, record); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: row, Message: err.Error()})
			continue
		}
		report.Imported++
	}

	uc.recorder.Record(ctx, callerID, entity.ActionImport, "bill", "",
		fmt.Sprintf("importadas %d, fallidas %d", report.Imported, report.Failed))
	return report, nil
}

func (uc *ImportUseCase) importRow(ctx context.Context, callerID string, cols map[string]int, record []string) error {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	parseDec := func(name string) (decimal.Decimal, error) {
		s := cell(name)
		if s == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: valor numérico inválido %q", name, s)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("%s: no puede ser negativo", name)
		}
		return d, nil
	}
	parseOptDec := func(name string) (*decimal.Decimal, error) {
		s := cell(name)
		if s == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%s: valor numérico inválido %q", name, s)
		}
		return &d, nil
	}

	serial := cell("serial_number")
	if serial == "" {
		return fmt.Errorf("serial_number vacío")
	}
	customer, err := uc.customerRepo.GetBySerialNumber(ctx, serial)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("cliente con serial %q no existe", serial)
	}

	billingDate, err := time.Parse(dateLayout, cell("billing_date"))
	if err != nil {
		return fmt.Errorf("billing_date: fecha inválida %q", cell("billing_date"))
	}
	if corebilling.FutureBillingDate(billingDate, time.Now()) {
		return fmt.Errorf("billing_date: no puede ser futura")
	}

	figures := corebilling.Figures{}
	if figures.IIG, err = parseDec("iig_price"); err != nil {
		return err
	}
	if figures.FNA, err = parseDec("fna_price"); err != nil {
		return err
	}
	if figures.GGC, err = parseDec("ggc_price"); err != nil {
		return err
	}
	if figures.CDN, err = parseDec("cdn_price"); err != nil {
		return err
	}
	if figures.BDIX, err = parseDec("bdix_price"); err != nil {
		return err
	}
	if figures.Baishan, err = parseDec("baishan_price"); err != nil {
		return err
	}
	if figures.Discount, err = parseDec("discount"); err != nil {
		return err
	}
	if figures.TotalReceived, err = parseDec("total_received"); err != nil {
		return err
	}
	if figures.TotalBill, err = parseOptDec("total_bill"); err != nil {
		return err
	}
	if figures.TotalDue, err = parseOptDec("total_due"); err != nil {
		return err
	}

	totalBill, totalDue, mismatch := corebilling.CheckTotals(figures)
	if mismatch != nil {
		return fmt.Errorf("totales no cuadran: declarado %s, calculado %s",
			mismatch.Provided, mismatch.Calculated)
	}

	status := cell("status")
	if status == "" {
		status = entity.BillStatusActive
	}
	switch status {
	case entity.BillStatusActive, entity.BillStatusInactive, entity.BillStatusTerminated:
	default:
		return fmt.Errorf("status inválido %q", status)
	}

	now := time.Now()
	return uc.billRepo.Create(ctx, &entity.Bill{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		IIGPrice:      figures.IIG,
		FNAPrice:      figures.FNA,
		GGCPrice:      figures.GGC,
		CDNPrice:      figures.CDN,
		BDIXPrice:     figures.BDIX,
		BaishanPrice:  figures.Baishan,
		Discount:      figures.Discount,
		TotalBill:     totalBill,
		TotalReceived: figures.TotalReceived,
		TotalDue:      totalDue,
		Status:        status,
		BillingDate:   billingDate,
		CreatedBy:     callerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}
