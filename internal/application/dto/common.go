package dto

// ErrorResponse cuerpo de error HTTP. El cliente solo necesita Message;
// Code ayuda a distinguir casos en tests y debugging.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (ej. signup exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}
