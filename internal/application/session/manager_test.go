package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/session"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore almacén en memoria con fallos inyectables.
type fakeStore struct {
	token    string
	userJSON []byte
	loadErr  error
	saveErr  error

	saves  int
	clears int
}

func (s *fakeStore) Load() (string, []byte, error) {
	if s.loadErr != nil {
		return "", nil, s.loadErr
	}
	return s.token, s.userJSON, nil
}

func (s *fakeStore) Save(token string, userJSON []byte) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	s.userJSON = userJSON
	return nil
}

func (s *fakeStore) Clear() error {
	s.clears++
	s.token = ""
	s.userJSON = nil
	return nil
}

// fakeAPI backend de auth con respuestas programables.
type fakeAPI struct {
	loginRes  *dto.AuthResponse
	loginErr  error
	signupErr error

	loginCalls int
}

func (a *fakeAPI) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	a.loginCalls++
	return a.loginRes, a.loginErr
}

func (a *fakeAPI) Signup(ctx context.Context, in dto.SignupRequest) error {
	return a.signupErr
}

// recorder captura las notificaciones emitidas.
type recorder struct {
	successes []string
	errors    []string
	infos     []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recorder) Info(msg string)    { r.infos = append(r.infos, msg) }

func (r *recorder) total() int { return len(r.successes) + len(r.errors) + len(r.infos) }

// apiError error del backend con mensaje visible, como los que produce el
// cliente REST al decodificar un cuerpo {code,message}.
type apiError struct{ msg string }

func (e *apiError) Error() string       { return e.msg }
func (e *apiError) UserMessage() string { return e.msg }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newManager(store *fakeStore, api *fakeAPI, n *recorder) *session.Manager {
	return session.NewManager(store, api, n, testLogger())
}

func validAuthResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		ID:       7,
		Username: "po",
		Email:    "po@agileflow.io",
		Role:     "PRODUCT_OWNER",
		Token:    "tok-abc",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Initialize — rehidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_SinSesionGuardadaArrancaLimpio(t *testing.T) {
	store := &fakeStore{}
	n := &recorder{}
	m := newManager(store, &fakeAPI{}, n)

	require.True(t, m.Loading(), "antes de Initialize la sesión está cargando")
	m.Initialize()

	assert.False(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
	assert.Zero(t, n.total(), "un arranque limpio no emite notificaciones")
	assert.Zero(t, store.clears, "no hay nada que limpiar")
}

func TestInitialize_SesionCompletaQuedaAutenticada(t *testing.T) {
	user := entity.UserInfo{ID: 7, Username: "po", Email: "po@agileflow.io", Role: entity.RoleProductOwner}
	userJSON, err := json.Marshal(&user)
	require.NoError(t, err)
	store := &fakeStore{token: "tok-abc", userJSON: userJSON}
	api := &fakeAPI{}
	m := newManager(store, api, &recorder{})

	m.Initialize()

	assert.False(t, m.Loading())
	require.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok-abc", m.Token())
	got := m.User()
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
	assert.Zero(t, api.loginCalls, "rehidratar no debe ir a la red")
}

// Clave suelta: token sin usuario (o al revés) fuerza logout completo.
func TestInitialize_SesionParcialForzaLogout(t *testing.T) {
	store := &fakeStore{token: "tok-huerfano"}
	m := newManager(store, &fakeAPI{}, &recorder{})

	m.Initialize()

	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, 1, store.clears, "la clave suelta debe limpiarse del almacén")
}

func TestInitialize_UsuarioCorruptoForzaLogout(t *testing.T) {
	store := &fakeStore{token: "tok-abc", userJSON: []byte("{no es json")}
	m := newManager(store, &fakeAPI{}, &recorder{})

	m.Initialize()

	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, 1, store.clears)
	assert.False(t, m.Loading(), "loading termina en false incluso tras fallo")
}

func TestInitialize_ErrorDeLecturaForzaLogout(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disco roto")}
	m := newManager(store, &fakeAPI{}, &recorder{})

	m.Initialize()

	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.Loading())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitoMutaMemoriaYPersiste(t *testing.T) {
	store := &fakeStore{}
	n := &recorder{}
	m := newManager(store, &fakeAPI{loginRes: validAuthResponse()}, n)
	m.Initialize()

	ok := m.Login(context.Background(), "po", "password")

	require.True(t, ok)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok-abc", m.Token())
	assert.Equal(t, 1, store.saves, "la sesión debe persistirse una vez")
	require.Len(t, n.successes, 1, "exactamente una notificación por login")
	assert.Equal(t, "Login successful!", n.successes[0])
	assert.Zero(t, len(n.errors))
}

// El message del backend (p.ej. 401) se muestra tal cual al usuario.
func TestLogin_FalloMuestraElMensajeDelBackend(t *testing.T) {
	n := &recorder{}
	m := newManager(&fakeStore{}, &fakeAPI{loginErr: &apiError{msg: "Invalid credentials"}}, n)
	m.Initialize()

	ok := m.Login(context.Background(), "po", "nope")

	require.False(t, ok)
	assert.False(t, m.IsAuthenticated())
	require.Len(t, n.errors, 1)
	assert.Equal(t, "Invalid credentials", n.errors[0])
}

// Error de transporte sin mensaje visible: cae al genérico.
func TestLogin_ErrorDeRedUsaMensajeGenerico(t *testing.T) {
	n := &recorder{}
	m := newManager(&fakeStore{}, &fakeAPI{loginErr: errors.New("connection refused")}, n)
	m.Initialize()

	ok := m.Login(context.Background(), "po", "password")

	require.False(t, ok)
	require.Len(t, n.errors, 1)
	assert.Equal(t, "Login failed. Please try again.", n.errors[0])
}

// Respuesta 2xx sin token o sin username no autentica.
func TestLogin_RespuestaMalformadaNoAutentica(t *testing.T) {
	res := validAuthResponse()
	res.Token = ""
	n := &recorder{}
	m := newManager(&fakeStore{}, &fakeAPI{loginRes: res}, n)
	m.Initialize()

	assert.False(t, m.Login(context.Background(), "po", "password"))
	assert.False(t, m.IsAuthenticated())
	assert.Len(t, n.errors, 1)
}

// Si el espejo durable falla, la sesión en memoria sigue siendo válida.
func TestLogin_FalloDePersistenciaNoEsFatal(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disco lleno")}
	n := &recorder{}
	m := newManager(store, &fakeAPI{loginRes: validAuthResponse()}, n)
	m.Initialize()

	ok := m.Login(context.Background(), "po", "password")

	require.True(t, ok, "el login no depende del almacén")
	assert.True(t, m.IsAuthenticated())
	assert.Len(t, n.successes, 1)
}

// Round-trip: login, "reinicio" con el mismo almacén, la sesión regresa sin
// tocar la red.
func TestLogin_RoundTripConRehidratacion(t *testing.T) {
	store := &fakeStore{}
	api := &fakeAPI{loginRes: validAuthResponse()}
	m := newManager(store, api, &recorder{})
	m.Initialize()
	require.True(t, m.Login(context.Background(), "po", "password"))
	require.Equal(t, 1, api.loginCalls)

	m2 := newManager(store, api, &recorder{})
	m2.Initialize()

	assert.True(t, m2.IsAuthenticated())
	assert.Equal(t, "tok-abc", m2.Token())
	assert.Equal(t, 1, api.loginCalls, "la rehidratación no llama al backend")
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_ExitoNoAutentica(t *testing.T) {
	n := &recorder{}
	m := newManager(&fakeStore{}, &fakeAPI{}, n)
	m.Initialize()

	ok := m.Signup(context.Background(), dto.SignupRequest{
		Username: "dev2", Email: "dev2@agileflow.io", Password: "secret", Role: "DEVELOPER",
	})

	require.True(t, ok)
	assert.False(t, m.IsAuthenticated(), "signup no inicia sesión")
	require.Len(t, n.successes, 1)
	assert.Equal(t, "Registration successful! Please login.", n.successes[0])
}

func TestSignup_DuplicadoMuestraElMensajeDelBackend(t *testing.T) {
	n := &recorder{}
	m := newManager(&fakeStore{}, &fakeAPI{signupErr: &apiError{msg: "Username already exists"}}, n)
	m.Initialize()

	assert.False(t, m.Signup(context.Background(), dto.SignupRequest{Username: "po"}))
	require.Len(t, n.errors, 1)
	assert.Equal(t, "Username already exists", n.errors[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaMemoriaYAlmacen(t *testing.T) {
	store := &fakeStore{}
	n := &recorder{}
	m := newManager(store, &fakeAPI{loginRes: validAuthResponse()}, n)
	m.Initialize()
	require.True(t, m.Login(context.Background(), "po", "password"))

	m.Logout()

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.User())
	assert.Empty(t, store.token, "el almacén debe quedar vacío")
	require.Len(t, n.infos, 1)
	assert.Equal(t, "You have been logged out.", n.infos[0])
}

func TestLogout_EsIdempotente(t *testing.T) {
	store := &fakeStore{}
	m := newManager(store, &fakeAPI{}, &recorder{})
	m.Initialize()

	m.Logout()
	m.Logout()

	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, 2, store.clears, "cada logout limpia; el estado final es el mismo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

// La copia de Snapshot no comparte el usuario con la sesión interna.
func TestSnapshot_DevuelveCopiaProfunda(t *testing.T) {
	m := newManager(&fakeStore{}, &fakeAPI{loginRes: validAuthResponse()}, &recorder{})
	m.Initialize()
	require.True(t, m.Login(context.Background(), "po", "password"))

	sess, loading := m.Snapshot()
	require.False(t, loading)
	require.NotNil(t, sess.User)

	sess.User.Username = "mutado"

	fresh := m.User()
	require.NotNil(t, fresh)
	assert.Equal(t, "po", fresh.Username, "mutar la copia no debe afectar al manager")
}
