package entity

import "time"

// Estados de prospecto (pipeline comercial).
const (
	ProspectStatusNew         = "New"
	ProspectStatusContacted   = "Contacted"
	ProspectStatusNegotiation = "Negotiation"
	ProspectStatusWon         = "Won"
	ProspectStatusLost        = "Lost"
)

// Prospect representa un cliente potencial. CreatedBy define la propiedad:
// un usuario sin rol elevado solo accede a sus propios prospectos.
type Prospect struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Notes     string
	Status    string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
