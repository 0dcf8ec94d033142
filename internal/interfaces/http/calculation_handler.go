package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	corebilling "github.com/jhoicas/netbill-api/internal/domain/billing"
)

// CalculationHandler verificación de totales y agregación de ingresos.
type CalculationHandler struct {
	uc *billing.CalculationUseCase
}

// NewCalculationHandler construye el handler.
func NewCalculationHandler(uc *billing.CalculationUseCase) *CalculationHandler {
	return &CalculationHandler{uc: uc}
}

// VerifyBill GET /api/calculations/verify/:billId
func (h *CalculationHandler) VerifyBill(c *fiber.Ctx) error {
	out, err := h.uc.VerifyBill(c.UserContext(), c.Params("billId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifyAll GET /api/calculations/verify?customer_id=&from=&to=
func (h *CalculationHandler) VerifyAll(c *fiber.Ctx) error {
	filter, err := parseBillFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	filter.Limit = 0 // la verificación recorre el conjunto completo
	out, err := h.uc.VerifyAll(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revenue maneja las cuatro agrupaciones:
//
//	GET /api/calculations/monthly?start_date=&end_date=
//	GET /api/calculations/weekly
//	GET /api/calculations/yearly
//	GET /api/calculations/by-customer
func (h *CalculationHandler) Revenue(by corebilling.GroupBy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, err := parseQueryDate(c.Query("start_date"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválida"})
		}
		end, err := parseQueryDate(c.Query("end_date"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválida"})
		}
		buckets, err := h.uc.Aggregate(c.UserContext(), by, start, end)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(buckets)
	}
}
