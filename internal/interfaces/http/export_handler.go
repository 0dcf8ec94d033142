package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/bulk"
	"github.com/jhoicas/netbill-api/internal/application/dto"
)

// ExportHandler exportación de facturas (CSV, XML, PDF) e importación CSV.
type ExportHandler struct {
	exportUC *bulk.ExportUseCase
	importUC *bulk.ImportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(exportUC *bulk.ExportUseCase, importUC *bulk.ImportUseCase) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, importUC: importUC}
}

// ExportCSV GET /api/bills/export/csv?customer_id=&status=&from=&to=
func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	filter, err := parseBillFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	filter.Limit = 0 // la exportación no pagina
	data, err := h.exportUC.BillsCSV(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bills.csv"`)
	return c.Send(data)
}

// ExportXML GET /api/bills/export/xml?customer_id=&status=&from=&to=
func (h *ExportHandler) ExportXML(c *fiber.Ctx) error {
	filter, err := parseBillFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	filter.Limit = 0
	data, err := h.exportUC.BillsXML(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bills.xml"`)
	return c.Send(data)
}

// StatementPDF GET /api/bills/:id/statement.pdf
func (h *ExportHandler) StatementPDF(c *fiber.Ctx) error {
	data, err := h.exportUC.StatementPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement.pdf"`)
	return c.Send(data)
}

// ImportCSV POST /api/bills/import/csv (multipart, campo "file")
func (h *ExportHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	report, err := h.importUC.ImportBillsCSV(c.UserContext(), GetUserID(c), f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(report)
}
