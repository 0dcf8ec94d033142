package entity

import "time"

// Estados de cliente.
const (
	CustomerStatusActive    = "Active"
	CustomerStatusInactive  = "Inactive"
	CustomerStatusSuspended = "Suspended"
)

// Customer representa un cliente facturado por el ISP.
// SerialNumber es el identificador comercial único; KAM es el Key Account
// Manager responsable de la relación.
type Customer struct {
	ID           string
	SerialNumber string
	Name         string
	Status       string // Active | Inactive | Suspended
	KAM          string
	Email        string
	Phone        string
	Address      string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
