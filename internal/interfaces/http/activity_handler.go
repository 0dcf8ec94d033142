package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/dto"
)

// ActivityHandler consulta y purga del log de actividad.
type ActivityHandler struct {
	uc *activity.UseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *activity.UseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List GET /api/activities (un rol no elevado solo ve sus propias entradas)
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.UserContext(), GetUserID(c), GetRole(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Purge DELETE /api/activities (solo super_admin)
func (h *ActivityHandler) Purge(c *fiber.Ctx) error {
	if err := h.uc.Purge(c.UserContext(), GetRole(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
