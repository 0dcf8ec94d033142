package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=Active Inactive Suspended"`
	KAM          string `json:"kam,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (reemplazo completo).
type UpdateCustomerRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=Active Inactive Suspended"`
	KAM          string `json:"kam,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	KAM          string `json:"kam,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}
