package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// sessionPath devuelve una ruta de sesión dentro de un directorio temporal.
func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "billennium", "session.json")
}

// tokenWithExp genera un JWT firmado con un exp relativo a ahora. La firma
// no importa: el manager solo inspecciona los claims sin verificarla.
func tokenWithExp(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "u-1",
		"exp": time.Now().Add(ttl).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-test"))
	require.NoError(t, err, "debe generarse el token de prueba")
	return tok
}

func testUser() *entity.User {
	return &entity.User{
		ID:       "u-1",
		Name:     "Carla Mendoza",
		Email:    "carla@acme.ec",
		Role:     entity.RoleUser,
		IsActive: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hidratación
// ──────────────────────────────────────────────────────────────────────────────

// Sin archivo de sesión el manager arranca deslogueado, sin error.
func TestHydrate_ArchivoAusente(t *testing.T) {
	m := NewManager(sessionPath(t))

	require.NoError(t, m.Hydrate())
	assert.True(t, m.Hydrated())
	assert.False(t, m.IsAuthenticated(), "sin archivo no debe haber sesión")
	assert.Empty(t, m.Token())
}

// Un archivo corrupto se descarta y se elimina para no reintentar en cada
// arranque.
func TestHydrate_ArchivoCorrupto(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	m := NewManager(path)
	require.NoError(t, m.Hydrate())
	assert.False(t, m.IsAuthenticated())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el archivo corrupto debe eliminarse")
}

// Un token con exp vencido se descarta al hidratar y el archivo queda
// limpio, igual que tras un logout.
func TestHydrate_TokenVencido(t *testing.T) {
	path := sessionPath(t)

	primero := NewManager(path)
	require.NoError(t, primero.Hydrate())
	require.NoError(t, primero.Set(testUser(), tokenWithExp(t, -time.Hour)))

	segundo := NewManager(path)
	require.NoError(t, segundo.Hydrate())
	assert.False(t, segundo.IsAuthenticated(), "un token vencido no debe restaurar la sesión")

	// El archivo persiste sin token: lo vencido no reaparece en el próximo arranque.
	tercero := NewManager(path)
	require.NoError(t, tercero.Hydrate())
	assert.False(t, tercero.IsAuthenticated())
}

// Un token vigente restaura usuario y token tal como se guardaron.
func TestHydrate_SesionVigente(t *testing.T) {
	path := sessionPath(t)
	token := tokenWithExp(t, time.Hour)

	primero := NewManager(path)
	require.NoError(t, primero.Hydrate())
	require.NoError(t, primero.Set(testUser(), token))

	segundo := NewManager(path)
	require.NoError(t, segundo.Hydrate())
	require.True(t, segundo.IsAuthenticated())
	assert.Equal(t, token, segundo.Token())
	assert.Equal(t, "carla@acme.ec", segundo.Current().User.Email)
	assert.False(t, segundo.IsAdmin(), "rol user no debe ser admin")
}

// Un token que no es JWT se conserva: será el backend quien lo rechace.
func TestHydrate_TokenOpaco(t *testing.T) {
	path := sessionPath(t)

	primero := NewManager(path)
	require.NoError(t, primero.Hydrate())
	require.NoError(t, primero.Set(testUser(), "token-opaco-no-jwt"))

	segundo := NewManager(path)
	require.NoError(t, segundo.Hydrate())
	assert.True(t, segundo.IsAuthenticated(), "un token opaco debe conservarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSet_InstalaSesion(t *testing.T) {
	m := NewManager(sessionPath(t))
	require.NoError(t, m.Hydrate())

	admin := testUser()
	admin.Role = entity.RoleAdmin
	require.NoError(t, m.Set(admin, tokenWithExp(t, time.Hour)))

	assert.True(t, m.IsAuthenticated())
	assert.True(t, m.IsAdmin(), "role admin debe habilitar IsAdmin")
}

func TestClear_EliminaSesionYArchivo(t *testing.T) {
	path := sessionPath(t)
	m := NewManager(path)
	require.NoError(t, m.Hydrate())
	require.NoError(t, m.Set(testUser(), tokenWithExp(t, time.Hour)))

	require.NoError(t, m.Clear())
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.Current())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el logout debe eliminar el archivo")

	// Clear es idempotente: sin archivo tampoco falla.
	require.NoError(t, m.Clear())
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de retorno
// ──────────────────────────────────────────────────────────────────────────────

// La vista de retorno sobrevive reinicios y se consume una sola vez.
func TestReturnTo_PersisteYSeConsumeUnaVez(t *testing.T) {
	path := sessionPath(t)

	primero := NewManager(path)
	require.NoError(t, primero.Hydrate())
	require.NoError(t, primero.SetReturnTo("/planes"))

	segundo := NewManager(path)
	require.NoError(t, segundo.Hydrate())
	assert.Equal(t, "/planes", segundo.TakeReturnTo())
	assert.Empty(t, segundo.TakeReturnTo(), "la segunda lectura debe venir vacía")

	// Consumida, tampoco reaparece tras otro arranque.
	tercero := NewManager(path)
	require.NoError(t, tercero.Hydrate())
	assert.Empty(t, tercero.TakeReturnTo())
}

// Iniciar sesión no pisa la vista de retorno pendiente: el login la necesita
// para retomar el flujo interrumpido.
func TestReturnTo_SobreviveAlLogin(t *testing.T) {
	m := NewManager(sessionPath(t))
	require.NoError(t, m.Hydrate())

	require.NoError(t, m.SetReturnTo("/planes"))
	require.NoError(t, m.Set(testUser(), tokenWithExp(t, time.Hour)))

	assert.Equal(t, "/planes", m.TakeReturnTo())
	assert.True(t, m.IsAuthenticated(), "consumir la vista no debe tocar la sesión")
}
