package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agileflow/agileflow-go/internal/application/session"
)

var _ session.Store = (*Store)(nil)

const fileName = "session.json"

// Store almacén de sesión persistente en disco: el equivalente del
// localStorage del navegador. Las claves token y user viven en un único
// archivo JSON que se reemplaza de forma atómica (archivo temporal + rename),
// así nunca queda una clave escrita sin la otra.
type Store struct {
	dir  string
	path string
}

// New construye el almacén sobre el directorio dado.
func New(dir string) *Store {
	return &Store{dir: dir, path: filepath.Join(dir, fileName)}
}

// payload formato en disco: las dos claves de la sesión, siempre juntas.
type payload struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Load lee el token y el JSON del usuario. Archivo inexistente no es error:
// devuelve ambos vacíos. Un archivo ilegible o corrupto sí es error; el
// Session Manager lo trata como sesión ausente y fuerza logout.
func (s *Store) Load() (string, []byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("leer sesión: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return "", nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	return p.Token, []byte(p.User), nil
}

// Save persiste token y usuario juntos. Escribe un archivo temporal con modo
// 0600 y lo renombra sobre el definitivo para que la escritura sea atómica.
func (s *Store) Save(token string, userJSON []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}

	data, err := json.Marshal(payload{Token: token, User: json.RawMessage(userJSON)})
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op si el rename ya lo movió

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("permisos de sesión: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("reemplazar sesión: %w", err)
	}
	return nil
}

// Clear elimina la sesión persistida. Que no exista no es error: limpiar dos
// veces deja el mismo estado que limpiar una.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}

// Path devuelve la ruta del archivo de sesión (útil para diagnóstico).
func (s *Store) Path() string {
	return s.path
}
