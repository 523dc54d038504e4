package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/application/auth"
	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/infrastructure/memory"
	apphttp "github.com/agileflow/agileflow-go/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAuthApp levanta una app Fiber con las rutas de auth sobre un
// repositorio en memoria vacío.
func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	uc := auth.NewUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	h := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/signup", h.Signup)
	return app
}

// postJSON lanza un POST con body JSON y devuelve la respuesta.
func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// registerUser da de alta una cuenta de prueba vía el endpoint de signup.
func registerUser(t *testing.T, app *fiber.App, username, email, password string) {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/signup", dto.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     "DEVELOPER",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el alta de la cuenta de prueba debe funcionar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_AltaExitosa(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/signup", dto.SignupRequest{
		Username: "maria",
		Email:    "maria@agileflow.io",
		Password: "secreta123",
		Role:     "SCRUM_MASTER",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User registered successfully", body.Message)
}

func TestSignup_UsernameDuplicado(t *testing.T) {
	app := buildAuthApp(t)
	registerUser(t, app, "maria", "maria@agileflow.io", "secreta123")

	resp := postJSON(t, app, "/api/auth/signup", dto.SignupRequest{
		Username: "maria",
		Email:    "otra@agileflow.io",
		Password: "secreta123",
		Role:     "DEVELOPER",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "USERNAME_EXISTS", body.Code)
	assert.Equal(t, "Username already exists", body.Message)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	app := buildAuthApp(t)
	registerUser(t, app, "maria", "maria@agileflow.io", "secreta123")

	resp := postJSON(t, app, "/api/auth/signup", dto.SignupRequest{
		Username: "otra",
		Email:    "maria@agileflow.io",
		Password: "secreta123",
		Role:     "DEVELOPER",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMAIL_EXISTS", body.Code)
}

func TestSignup_RolInvalido(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/signup", dto.SignupRequest{
		Username: "maria",
		Email:    "maria@agileflow.io",
		Password: "secreta123",
		Role:     "SUPERUSER",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	app := buildAuthApp(t)
	registerUser(t, app, "maria", "maria@agileflow.io", "secreta123")

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Username: "maria",
		Password: "secreta123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "maria", body.Username)
	assert.Equal(t, "maria@agileflow.io", body.Email)
	assert.Equal(t, "DEVELOPER", body.Role)
	assert.NotEmpty(t, body.Token, "el login debe devolver un JWT")
}

// El campo username también acepta el email como identificador.
func TestLogin_ConEmailComoIdentificador(t *testing.T) {
	app := buildAuthApp(t)
	registerUser(t, app, "maria", "maria@agileflow.io", "secreta123")

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Username: "maria@agileflow.io",
		Password: "secreta123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	app := buildAuthApp(t)
	registerUser(t, app, "maria", "maria@agileflow.io", "secreta123")

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Username: "maria",
		Password: "equivocada",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.Equal(t, "Invalid credentials", body.Message)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Username: "fantasma",
		Password: "loquesea",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CamposVacios(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
