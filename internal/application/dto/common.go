package dto

import "github.com/go-playground/validator/v10"

// validate instancia única del validador de structs (los tags `validate:`
// de los requests se evalúan con go-playground/validator).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las reglas `validate:` del request. Devuelve el error del
// validador tal cual; los handlers lo mapean a 400 VALIDATION.
func Validate(in any) error {
	return validate.Struct(in)
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
