package dto

// SuccessResponse sobre de respuesta exitosa.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data"`
	Message string `json:"message" example:"Operación exitosa"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError detalle de validación por campo.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// MessageResponse data de operaciones sin entidad de retorno.
type MessageResponse struct {
	Message string `json:"message"`
}
