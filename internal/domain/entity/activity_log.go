package entity

import "time"

// Acciones registradas en el log de actividad.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionImport = "import"
	ActionLogin  = "login"
)

// ActivityLog entrada de auditoría de una operación de escritura.
type ActivityLog struct {
	ID        string
	UserID    string
	Action    string // create | update | delete | import | login
	Entity    string // customer | bill | prospect | user
	EntityID  string
	Detail    string
	CreatedAt time.Time
}
