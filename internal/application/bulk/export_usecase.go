package bulk

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	appbilling "github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// ExportUseCase exportación de facturas: CSV, XML y estado de cuenta PDF.
type ExportUseCase struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	xmlBuilder   appbilling.BillsXMLBuilder
	pdfGenerator appbilling.StatementPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	xmlBuilder appbilling.BillsXMLBuilder,
	pdfGenerator appbilling.StatementPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		xmlBuilder:   xmlBuilder,
		pdfGenerator: pdfGenerator,
	}
}

// BillsCSV exporta las facturas del filtro como CSV, con el serial del
// cliente resuelto. El header es el mismo que acepta la importación.
func (uc *ExportUseCase) BillsCSV(ctx context.Context, filter repository.BillFilter) ([]byte, error) {
	bills, customers, err := uc.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(billCSVHeader); err != nil {
		return nil, fmt.Errorf("escribir header CSV: %w", err)
	}
	for _, b := range bills {
		serial := ""
		if c, ok := customers[b.CustomerID]; ok {
			serial = c.SerialNumber
		}
		record := []string{
			serial,
			b.BillingDate.Format(dateLayout),
			b.IIGPrice.String(),
			b.FNAPrice.String(),
			b.GGCPrice.String(),
			b.CDNPrice.String(),
			b.BDIXPrice.String(),
			b.BaishanPrice.String(),
			b.Discount.String(),
			b.TotalReceived.String(),
			b.TotalBill.String(),
			b.TotalDue.String(),
			b.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BillsXML exporta las facturas del filtro como documento XML.
func (uc *ExportUseCase) BillsXML(ctx context.Context, filter repository.BillFilter) ([]byte, error) {
	bills, customers, err := uc.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.xmlBuilder.Build(bills, customers)
}

// StatementPDF genera el estado de cuenta PDF de una factura.
func (uc *ExportUseCase) StatementPDF(ctx context.Context, billID string) ([]byte, error) {
	bill, err := uc.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return uc.pdfGenerator.GenerateStatementPDF(ctx, bill, customer)
}

// fetch trae las facturas del filtro y resuelve sus clientes una sola vez.
func (uc *ExportUseCase) fetch(ctx context.Context, filter repository.BillFilter) ([]*entity.Bill, map[string]*entity.Customer, error) {
	bills, err := uc.billRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	customers := make(map[string]*entity.Customer)
	for _, b := range bills {
		if _, ok := customers[b.CustomerID]; ok {
			continue
		}
		c, err := uc.customerRepo.GetByID(ctx, b.CustomerID)
		if err != nil {
			return nil, nil, err
		}
		if c != nil {
			customers[b.CustomerID] = c
		}
	}
	return bills, customers, nil
}
