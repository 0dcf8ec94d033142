package dto

// CreateProspectRequest body para POST /api/prospects.
type CreateProspectRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone,omitempty"`
	Notes  string `json:"notes,omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=New Contacted Negotiation Won Lost"`
}

// UpdateProspectRequest body para PUT /api/prospects/:id.
type UpdateProspectRequest = CreateProspectRequest

// ProspectResponse prospecto en respuestas.
type ProspectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
}
