package dto

// UpdateUserRoleRequest body para PUT /api/users/:id/role.
// Asignar super_admin está reservado a super_admin (ver authz.CanAssignRole).
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin admin user"`
}
