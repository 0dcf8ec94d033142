package bulk

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
	"github.com/jhoicas/netbill-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memBillRepo struct {
	bills []*entity.Bill
}

func (m *memBillRepo) Create(_ context.Context, b *entity.Bill) error {
	m.bills = append(m.bills, b)
	return nil
}
func (m *memBillRepo) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	for _, b := range m.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}
func (m *memBillRepo) ListByFilter(_ context.Context, _ repository.BillFilter) ([]*entity.Bill, error) {
	return m.bills, nil
}
func (m *memBillRepo) Update(_ context.Context, _ *entity.Bill) error { return nil }
func (m *memBillRepo) Delete(_ context.Context, _ string) error       { return nil }

type memCustomerRepo struct {
	bySerial map[string]*entity.Customer
}

func (m *memCustomerRepo) Create(_ context.Context, _ *entity.Customer) error { return nil }
func (m *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range m.bySerial {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCustomerRepo) GetBySerialNumber(_ context.Context, serial string) (*entity.Customer, error) {
	return m.bySerial[serial], nil
}
func (m *memCustomerRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomerRepo) Update(_ context.Context, _ *entity.Customer) error { return nil }
func (m *memCustomerRepo) Delete(_ context.Context, _ string) error           { return nil }

type memActivityRepo struct {
	entries []*entity.ActivityLog
}

func (m *memActivityRepo) Create(_ context.Context, l *entity.ActivityLog) error {
	m.entries = append(m.entries, l)
	return nil
}
func (m *memActivityRepo) ListAll(_ context.Context, _, _ int) ([]*entity.ActivityLog, error) {
	return m.entries, nil
}
func (m *memActivityRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.ActivityLog, error) {
	return m.entries, nil
}
func (m *memActivityRepo) Purge(_ context.Context) error { return nil }

func newImportFixture() (*ImportUseCase, *memBillRepo, *memActivityRepo) {
	billRepo := &memBillRepo{}
	customerRepo := &memCustomerRepo{bySerial: map[string]*entity.Customer{
		"SN-001": {ID: "c-1", SerialNumber: "SN-001", Name: "ISP Uno", Status: entity.CustomerStatusActive},
	}}
	activityRepo := &memActivityRepo{}
	recorder := activity.NewRecorder(activityRepo, logger.New(logger.Config{Env: "test", Level: "error"}))
	return NewImportUseCase(billRepo, customerRepo, recorder), billRepo, activityRepo
}

const csvHeader = "serial_number,billing_date,iig_price,fna_price,ggc_price,cdn_price,bdix_price,baishan_price,discount,total_received,total_bill,total_due,status\n"

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_FilaValidaConTotalesAutocompletados(t *testing.T) {
	uc, billRepo, activityRepo := newImportFixture()

	// total_bill y total_due vacíos: se autocompletan (150 y 60)
	csv := csvHeader + "SN-001,2024-03-01,100,20,30,0,0,0,10,80,,,Active\n"

	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, billRepo.bills, 1)

	b := billRepo.bills[0]
	assert.Equal(t, "c-1", b.CustomerID, "el serial se resuelve al cliente")
	assert.Equal(t, "150", b.TotalBill.String())
	assert.Equal(t, "60", b.TotalDue.String())

	require.Len(t, activityRepo.entries, 1, "la importación deja una entrada de auditoría")
	assert.Equal(t, entity.ActionImport, activityRepo.entries[0].Action)
}

func TestImport_FilaConTotalQueNoCuadraSeReporta(t *testing.T) {
	uc, billRepo, _ := newImportFixture()

	csv := csvHeader +
		"SN-001,2024-03-01,100,20,30,0,0,0,10,80,150,60,Active\n" + // válida
		"SN-001,2024-03-02,100,20,30,0,0,0,10,80,999,60,Active\n" // total_bill declarado ≠ 150

	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported, "las filas válidas se insertan aunque otras fallen")
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Row, "el error apunta a la fila 2")
	assert.Contains(t, report.Errors[0].Message, "no cuadran")
	assert.Len(t, billRepo.bills, 1)
}

func TestImport_SerialDesconocidoSeReporta(t *testing.T) {
	uc, _, _ := newImportFixture()

	csv := csvHeader + "SN-999,2024-03-01,100,0,0,0,0,0,0,0,,,\n"

	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Errors[0].Message, "SN-999")
}

func TestImport_HeaderSinColumnasRequeridas(t *testing.T) {
	uc, _, _ := newImportFixture()

	csv := "nombre,fecha\nfoo,bar\n"
	_, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serial_number")
}

func TestImport_ColumnasEnOtroOrden(t *testing.T) {
	uc, billRepo, _ := newImportFixture()

	csv := "billing_date,serial_number,iig_price\n2024-03-01,SN-001,50\n"
	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported, "el header se mapea por nombre, no por posición")
	require.Len(t, billRepo.bills, 1)
	assert.Equal(t, "50", billRepo.bills[0].TotalBill.String())
}

func TestImport_ArchivoWindows1252SeDecodifica(t *testing.T) {
	uc, _, _ := newImportFixture()

	// 0xE1 es la "á" en Windows-1252 y no es UTF-8 válido
	raw := csvHeader + "SN-001,2024-03-01,100,0,0,0,0,0,0,0,,,Inv\xe1lido\n"

	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(raw))
	require.NoError(t, err, "el archivo no-UTF-8 se decodifica en lugar de romper el parser")

	// El status decodificado "Inválido" no es un estado permitido: falla la fila,
	// pero con el mensaje del validador, no con un error de encoding.
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Errors[0].Message, "status")
}

func TestImport_FechaFuturaSeReporta(t *testing.T) {
	uc, _, _ := newImportFixture()

	csv := csvHeader + "SN-001,2099-01-01,100,0,0,0,0,0,0,0,,,\n"
	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Errors[0].Message, "futura")
}

func TestImport_FechaDeHoySeAcepta(t *testing.T) {
	uc, billRepo, _ := newImportFixture()

	today := time.Now().Format("2006-01-02")
	csv := csvHeader + "SN-001," + today + ",100,0,0,0,0,0,0,0,,,Active\n"
	report, err := uc.ImportBillsCSV(context.Background(), "u-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, billRepo.bills, 1)
}
