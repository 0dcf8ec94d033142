package entity

import "time"

// Roles del sistema. La jerarquía es super_admin ⊇ admin ⊇ user.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del backoffice de facturación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // super_admin | admin | user
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
