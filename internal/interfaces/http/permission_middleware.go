package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain/authz"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// RequirePermission exige que el rol del token tenga el permiso dado. La
// lista de permisos del rol se lee de la tabla roles; "all" y el rol
// super_admin conceden cualquier permiso. Va después de AuthMiddleware.
func RequirePermission(roles repository.RoleRepository, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token sin rol"})
		}
		perms, err := roles.GetPermissions(c.UserContext(), role)
		if err != nil {
			return respondError(c, err)
		}
		if !authz.IsAuthorized(role, entity.NewPermissionSet(perms), permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente: " + permission})
		}
		return c.Next()
	}
}
