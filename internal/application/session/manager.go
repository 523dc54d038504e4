package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/pkg/logger"
)

// Mensajes de notificación (los textos de los toasts del producto original).
const (
	msgLoginOK      = "Login successful!"
	msgLoginFailed  = "Login failed. Please try again."
	msgSignupOK     = "Registration successful! Please login."
	msgSignupFailed = "Registration failed. Please try again."
	msgLoggedOut    = "You have been logged out."
)

// Manager es el dueño exclusivo de la sesión en memoria. Toda mutación pasa
// por aquí y es siempre un reemplazo completo de token + usuario, nunca un
// campo suelto. El Store es un espejo durable: se escribe después de mutar la
// memoria, salvo en Initialize donde la dirección se invierte una sola vez.
type Manager struct {
	store    Store
	api      AuthAPI
	notifier Notifier
	log      *logger.Logger

	mu      sync.RWMutex
	sess    entity.Session
	loading bool
}

// NewManager construye el Session Manager. La sesión arranca en loading=true:
// ninguna decisión de guard es confiable hasta que Initialize termine.
func NewManager(store Store, api AuthAPI, notifier Notifier, log *logger.Logger) *Manager {
	return &Manager{
		store:    store,
		api:      api,
		notifier: notifier,
		log:      log,
		loading:  true,
	}
}

// Initialize rehidrata la sesión desde el almacén persistente. Si el token y
// el usuario están presentes y el JSON deserializa, la sesión queda
// autenticada; cualquier otro estado (clave suelta, JSON corrupto, error de
// lectura) dispara Logout para garantizar un estado limpio. Siempre termina
// con loading=false. Debe ejecutarse exactamente una vez, al arranque.
func (m *Manager) Initialize() {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	token, userJSON, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("lectura del almacén de sesión falló")
		m.Logout()
		return
	}
	if token == "" && len(userJSON) == 0 {
		// No hay sesión guardada: arranque limpio, nada que limpiar.
		return
	}
	if token == "" || len(userJSON) == 0 {
		// Clave suelta: estado inconsistente, forzar limpieza.
		m.log.Warn().Msg("sesión persistida incompleta, forzando logout")
		m.Logout()
		return
	}

	var user entity.UserInfo
	if err := json.Unmarshal(userJSON, &user); err != nil {
		m.log.Warn().Err(err).Msg("usuario persistido corrupto, forzando logout")
		m.Logout()
		return
	}

	m.mu.Lock()
	m.sess = entity.Session{Token: token, User: &user}
	m.mu.Unlock()

	m.log.Debug().Str("username", user.Username).Str("role", string(user.Role)).
		Msg("sesión rehidratada")
}

// Login envía credenciales al backend. En éxito reemplaza la sesión en
// memoria, la persiste y devuelve true. En fallo (red, no-2xx, cuerpo
// malformado) la sesión queda sin autenticar, se emite una notificación con
// el message del backend (o un genérico) y devuelve false. Nunca propaga
// errores más allá de su frontera.
func (m *Manager) Login(ctx context.Context, username, password string) bool {
	res, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.log.Debug().Err(err).Str("username", username).Msg("login fallido")
		m.notifier.Error(userMessage(err, msgLoginFailed))
		return false
	}
	if res == nil || res.Token == "" || res.Username == "" {
		// Respuesta 2xx pero sin los campos del contrato.
		m.log.Warn().Msg("respuesta de login malformada")
		m.notifier.Error(msgLoginFailed)
		return false
	}

	user := &entity.UserInfo{
		ID:       res.ID,
		Username: res.Username,
		Email:    res.Email,
		Role:     entity.Role(res.Role),
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		m.notifier.Error(msgLoginFailed)
		return false
	}

	m.mu.Lock()
	m.sess = entity.Session{Token: res.Token, User: user}
	m.mu.Unlock()

	if err := m.store.Save(res.Token, userJSON); err != nil {
		// El espejo durable falló pero la sesión en memoria es válida;
		// el usuario queda logueado y solo se pierde la rehidratación.
		m.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}

	m.notifier.Success(msgLoginOK)
	return true
}

// Signup registra una cuenta nueva. No autentica: el llamador debe hacer
// login aparte. Misma convención de resultado que Login.
func (m *Manager) Signup(ctx context.Context, in dto.SignupRequest) bool {
	if err := m.api.Signup(ctx, in); err != nil {
		m.log.Debug().Err(err).Str("username", in.Username).Msg("signup fallido")
		m.notifier.Error(userMessage(err, msgSignupFailed))
		return false
	}
	m.notifier.Success(msgSignupOK)
	return true
}

// Logout limpia token y usuario de memoria y del almacén persistente,
// de forma síncrona. Nunca falla e idempotente: dos logout seguidos dejan
// el mismo estado limpio que uno.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.sess = entity.Session{}
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}

	m.notifier.Info(msgLoggedOut)
}

// Snapshot devuelve una copia de la sesión actual y el flag loading.
// Los guards deciden sobre esta copia; si loading es true deben suspender,
// no tratar la sesión como no autenticada.
func (m *Manager) Snapshot() (entity.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := m.sess
	if m.sess.User != nil {
		u := *m.sess.User
		sess.User = &u
	}
	return sess, m.loading
}

// IsAuthenticated reporta si la sesión actual está autenticada.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.IsAuthenticated()
}

// Loading reporta si la sesión todavía no fue inicializada.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// User devuelve una copia del usuario autenticado, o nil.
func (m *Manager) User() *entity.UserInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess.User == nil {
		return nil
	}
	u := *m.sess.User
	return &u
}

// Token devuelve el bearer token actual, o cadena vacía. Lo usa el cliente
// REST para inyectar el header Authorization.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.Token
}
