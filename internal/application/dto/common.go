package dto

// FieldError problema de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP con el envelope {success, code, message, errors?}.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Fail construye un ErrorResponse simple.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// FailValidation construye un ErrorResponse 400 con detalle por campo.
func FailValidation(errs []FieldError) ErrorResponse {
	return ErrorResponse{Success: false, Code: "VALIDATION", Message: "validación fallida", Errors: errs}
}

// SuccessResponse cuerpo de éxito con el envelope {success, message?, data?}.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye una respuesta de éxito con datos.
func OK(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// OKMessage construye una respuesta de éxito con mensaje y datos opcionales.
func OKMessage(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}
