// Package authz implementa el gate de autorización: un predicado puro sobre
// rol, permisos y propiedad del recurso. La resolución de permisos (lookup en
// DB) es responsabilidad del caller; aquí no hay I/O.
package authz

import "github.com/jhoicas/netbill-api/internal/domain/entity"

// roleRank jerarquía super_admin ⊇ admin ⊇ user. Un rol desconocido vale 0.
func roleRank(role string) int {
	switch role {
	case entity.RoleSuperAdmin:
		return 3
	case entity.RoleAdmin:
		return 2
	case entity.RoleUser:
		return 1
	default:
		return 0
	}
}

// IsElevated indica si el rol tiene autoridad de lectura administrativa.
// super_admin y admin se tratan como iguales en la mayoría de los checks.
func IsElevated(role string) bool {
	return roleRank(role) >= roleRank(entity.RoleAdmin)
}

// IsAuthorized decide si un rol con el set de permisos dado puede ejecutar la
// operación. super_admin y el permiso "all" conceden todo.
func IsAuthorized(role string, perms entity.PermissionSet, permission string) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	return perms.Has(permission)
}

// HasAnyRole indica si el rol está dentro de los permitidos, respetando la
// jerarquía: un rol superior satisface el requisito de uno inferior.
func HasAnyRole(role string, allowed ...string) bool {
	rank := roleRank(role)
	if rank == 0 {
		return false
	}
	for _, a := range allowed {
		if rank >= roleRank(a) && roleRank(a) > 0 {
			return true
		}
	}
	return false
}

// CanManageUser decide si actor puede modificar o eliminar a target.
// Solo super_admin puede tocar a otro admin (o a otro super_admin).
func CanManageUser(actorRole, targetRole string) bool {
	if !IsElevated(actorRole) {
		return false
	}
	if roleRank(targetRole) >= roleRank(entity.RoleAdmin) {
		return actorRole == entity.RoleSuperAdmin
	}
	return true
}

// CanAssignRole decide si actor puede asignar newRole a un usuario.
// Asignar super_admin está reservado a super_admin.
func CanAssignRole(actorRole, newRole string) bool {
	if !IsElevated(actorRole) {
		return false
	}
	if newRole == entity.RoleSuperAdmin {
		return actorRole == entity.RoleSuperAdmin
	}
	return true
}

// CanPurgeLogs solo super_admin puede vaciar el log de actividad.
func CanPurgeLogs(role string) bool {
	return role == entity.RoleSuperAdmin
}

// OwnsOrElevated fallback de propiedad: sin rol elevado, el acceso se concede
// únicamente cuando el recurso fue creado por el caller (prospectos y log de
// actividad propio).
func OwnsOrElevated(role, callerID, resourceOwner string) bool {
	if IsElevated(role) {
		return true
	}
	return callerID != "" && callerID == resourceOwner
}
