package entity

import "time"

// Permisos del sistema. "all" concede todo (short-circuit en el gate).
const (
	PermissionAll            = "all"
	PermissionCustomersWrite = "customers.write"
	PermissionBillsWrite     = "bills.write"
)

// PermissionSet conjunto de permisos de un rol, deserializado una sola vez
// desde la columna text[] de la DB. Nunca se manipula como texto plano.
type PermissionSet map[string]struct{}

// NewPermissionSet construye el set desde la lista almacenada.
func NewPermissionSet(perms []string) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// Has indica si el permiso está en el set. "all" concede cualquier permiso.
func (s PermissionSet) Has(permission string) bool {
	if _, ok := s[PermissionAll]; ok {
		return true
	}
	_, ok := s[permission]
	return ok
}

// List devuelve los permisos como slice (orden no garantizado).
func (s PermissionSet) List() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// Role rol con su lista de permisos persistida.
type Role struct {
	Name        string // super_admin | admin | user
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
