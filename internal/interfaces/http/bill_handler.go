package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// BillHandler maneja las peticiones HTTP de facturas (protegido).
type BillHandler struct {
	uc *billing.BillUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.BillUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// Create POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	bill, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// List GET /api/bills?customer_id=&status=&from=&to=&limit=&offset=
func (h *BillHandler) List(c *fiber.Ctx) error {
	filter, err := parseBillFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/bills/:id
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	bill, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Update PUT /api/bills/:id (reemplazo completo, mismo gate que Create)
func (h *BillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	bill, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Delete DELETE /api/bills/:id
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseBillFilter arma el filtro de listado desde la query. Las fechas
// from/to van en formato YYYY-MM-DD y son inclusivas.
func parseBillFilter(c *fiber.Ctx) (repository.BillFilter, error) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return repository.BillFilter{}, err
	}
	page.DefaultPage()

	filter := repository.BillFilter{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	var err error
	if filter.From, err = parseQueryDate(c.Query("from")); err != nil {
		return repository.BillFilter{}, err
	}
	if filter.To, err = parseQueryDate(c.Query("to")); err != nil {
		return repository.BillFilter{}, err
	}
	return filter, nil
}

func parseQueryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
