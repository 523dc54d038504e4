package localstore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/infrastructure/localstore"
)

func TestLoad_SinArchivoDevuelveVacioSinError(t *testing.T) {
	s := localstore.New(t.TempDir())

	token, userJSON, err := s.Load()

	require.NoError(t, err, "archivo ausente no es un error")
	assert.Empty(t, token)
	assert.Empty(t, userJSON)
}

func TestSaveYLoad_RoundTrip(t *testing.T) {
	s := localstore.New(t.TempDir())
	user := []byte(`{"id":7,"username":"po","email":"po@agileflow.io","role":"PRODUCT_OWNER"}`)

	require.NoError(t, s.Save("tok-abc", user))

	token, userJSON, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	assert.JSONEq(t, string(user), string(userJSON))
}

// Guardar de nuevo reemplaza la sesión completa, no mezcla claves.
func TestSave_ReemplazaSesionAnterior(t *testing.T) {
	s := localstore.New(t.TempDir())
	require.NoError(t, s.Save("tok-1", []byte(`{"username":"a"}`)))
	require.NoError(t, s.Save("tok-2", []byte(`{"username":"b"}`)))

	token, userJSON, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.JSONEq(t, `{"username":"b"}`, string(userJSON))
}

// El directorio se crea bajo demanda.
func TestSave_CreaDirectorioSiNoExiste(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "agileflow")
	s := localstore.New(dir)

	require.NoError(t, s.Save("tok", []byte(`{}`)))

	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

// El archivo de sesión no debe ser legible por otros usuarios.
func TestSave_PermisosRestrictivos(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permisos POSIX")
	}
	s := localstore.New(t.TempDir())
	require.NoError(t, s.Save("tok", []byte(`{}`)))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_ArchivoCorruptoEsError(t *testing.T) {
	dir := t.TempDir()
	s := localstore.New(dir)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{truncado"), 0o600))

	_, _, err := s.Load()
	assert.Error(t, err, "JSON corrupto debe reportarse para que el manager fuerce logout")
}

func TestClear_EsIdempotente(t *testing.T) {
	s := localstore.New(t.TempDir())
	require.NoError(t, s.Save("tok", []byte(`{}`)))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "limpiar sin sesión guardada no es error")

	token, userJSON, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, userJSON)
}
