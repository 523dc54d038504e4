package session

import (
	"context"
	"errors"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// Store puerto del almacén de sesión persistente (el espejo durable que en el
// frontend original era localStorage). Las claves token y user se escriben y
// limpian siempre juntas; la implementación garantiza esa atomicidad.
type Store interface {
	// Load devuelve el token y el JSON del usuario guardados. Si no hay
	// sesión guardada devuelve ambos vacíos sin error.
	Load() (token string, userJSON []byte, err error)
	Save(token string, userJSON []byte) error
	Clear() error
}

// AuthAPI puerto hacia los endpoints de autenticación del backend REST.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*dto.AuthResponse, error)
	Signup(ctx context.Context, in dto.SignupRequest) error
}

// Notifier notificaciones visibles al usuario: el equivalente de los toasts
// del frontend original. Cada login/signup/logout emite exactamente una.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// userMessenger lo implementan los errores del backend que traen un mensaje
// apto para mostrar al usuario (el campo message del cuerpo de error).
type userMessenger interface {
	UserMessage() string
}

// userMessage extrae el mensaje visible de un error, con fallback genérico.
func userMessage(err error, fallback string) string {
	var um userMessenger
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
