package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/infrastructure/rest"
	"github.com/agileflow/agileflow-go/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	var src rest.TokenSource
	if token != "" {
		src = func() string { return token }
	}
	return rest.NewClient(srv.URL, 5*time.Second, src, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// El backend responde la identidad en el nivel superior.
func TestLogin_RespuestaPlana(t *testing.T) {
	var gotBody dto.LoginRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		json.NewEncoder(w).Encode(dto.AuthResponse{
			ID: 7, Username: "po", Email: "po@agileflow.io",
			Role: "PRODUCT_OWNER", Token: "tok-abc",
		})
	}, "")

	res, err := rest.NewAuthClient(client).Login(context.Background(), "po", "password")

	require.NoError(t, err)
	assert.Equal(t, dto.LoginRequest{Username: "po", Password: "password"}, gotBody,
		"las credenciales viajan como {username,password} en el cuerpo")
	assert.Equal(t, "tok-abc", res.Token)
	assert.Equal(t, "PRODUCT_OWNER", res.Role)
}

// El backend envuelve la identidad en "data": mismo resultado.
func TestLogin_RespuestaEnvueltaEnData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": dto.AuthResponse{
				ID: 7, Username: "po", Email: "po@agileflow.io",
				Role: "PRODUCT_OWNER", Token: "tok-abc",
			},
		})
	}, "")

	res, err := rest.NewAuthClient(client).Login(context.Background(), "po", "password")

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", res.Token)
	assert.Equal(t, int64(7), res.ID)
}

// Un 401 llega como *APIError con el message del cuerpo, apto para mostrar.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"})
	}, "")

	_, err := rest.NewAuthClient(client).Login(context.Background(), "po", "nope")

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.UserMessage())
}

// Cuerpo de error que no es JSON: el message queda vacío y el llamador
// aplica su fallback.
func TestLogin_ErrorSinCuerpoJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}, "")

	_, err := rest.NewAuthClient(client).Login(context.Background(), "po", "password")

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.UserMessage())
}

// Backend caído: error de transporte envuelto, no *APIError.
func TestLogin_BackendInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrar de inmediato para forzar connection refused
	client := rest.NewClient(srv.URL, time.Second, nil, testLogger())

	_, err := rest.NewAuthClient(client).Login(context.Background(), "po", "password")

	require.Error(t, err)
	var apiErr *rest.APIError
	assert.False(t, errors.As(err, &apiErr), "un fallo de red no es un error del backend")
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_EnviaElContratoCompleto(t *testing.T) {
	var got dto.SignupRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.MessageResponse{Message: "User registered successfully"})
	}, "")

	err := rest.NewAuthClient(client).Signup(context.Background(), dto.SignupRequest{
		Username: "dev2", Email: "dev2@agileflow.io", Password: "secret", Role: "DEVELOPER",
	})

	require.NoError(t, err)
	assert.Equal(t, "dev2", got.Username)
	assert.Equal(t, "DEVELOPER", got.Role)
}

func TestSignup_DuplicadoDevuelveAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "Username already exists"})
	}, "")

	err := rest.NewAuthClient(client).Signup(context.Background(), dto.SignupRequest{Username: "po"})

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Username already exists", apiErr.UserMessage())
}
