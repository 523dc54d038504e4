package rest

import (
	"context"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/session"
)

var _ session.AuthAPI = (*AuthClient)(nil)

// AuthClient cliente de los endpoints de autenticación del backend.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el cliente de auth sobre el cliente base.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// authEnvelope tolera las dos formas de respuesta del backend: identidad en
// el nivel superior o envuelta en "data" (ambas variantes existen en el
// contrato observado).
type authEnvelope struct {
	dto.AuthResponse
	Data *dto.AuthResponse `json:"data"`
}

// Login envía {username,password} a POST /api/auth/login y devuelve la
// identidad + token. Status no-2xx llega como *APIError.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	in := dto.LoginRequest{Username: username, Password: password}

	var env authEnvelope
	if err := a.c.post(ctx, "/api/auth/login", nil, in, &env); err != nil {
		return nil, err
	}
	if env.Data != nil && env.Data.Token != "" {
		return env.Data, nil
	}
	res := env.AuthResponse
	return &res, nil
}

// Signup envía {username,email,password,role} a POST /api/auth/signup.
// La respuesta no trae sesión; el llamador hace login aparte.
func (a *AuthClient) Signup(ctx context.Context, in dto.SignupRequest) error {
	return a.c.post(ctx, "/api/auth/signup", nil, in, nil)
}
