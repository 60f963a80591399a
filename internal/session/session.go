// Package session mantiene la sesión local del portal: el usuario cacheado
// y su token de acceso, persistidos en disco para sobrevivir reinicios.
// El manager se inyecta explícitamente; no hay estado ambiente de paquete.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// Session es la pareja usuario+token vigente. El usuario es una copia
// cacheada del backend, posiblemente desactualizada.
type Session struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

type fileState struct {
	User     *entity.User `json:"user,omitempty"`
	Token    string       `json:"token,omitempty"`
	ReturnTo string       `json:"return_to,omitempty"`
}

// Manager administra la sesión. Escrituras solo desde login, registro,
// logout e hidratación, siempre disparadas por acciones discretas del
// usuario; no requiere lock.
type Manager struct {
	path     string
	current  *Session
	returnTo string
	hydrated bool
}

// NewManager crea un manager que persiste en path. Llamar Hydrate antes de
// consultar el estado.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Hydrate carga la sesión persistida. Un archivo ausente, ilegible o con un
// token ya vencido deja al manager deslogueado sin error: el estado roto se
// descarta igual que en un logout.
func (m *Manager) Hydrate() error {
	m.hydrated = true

	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: leer %s: %w", m.path, err)
	}

	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		// Archivo corrupto: lo eliminamos para no reintentar en cada arranque
		_ = os.Remove(m.path)
		return nil
	}

	m.returnTo = st.ReturnTo
	if st.Token == "" || st.User == nil {
		return nil
	}
	if tokenExpired(st.Token) {
		st.User, st.Token = nil, ""
		_ = m.persist(st)
		return nil
	}

	m.current = &Session{User: st.User, Token: st.Token}
	return nil
}

// Hydrated informa si Hydrate ya corrió; hasta entonces los guards deben
// mostrar un estado de espera en lugar de redirigir al login.
func (m *Manager) Hydrated() bool {
	return m.hydrated
}

// Set instala y persiste una sesión nueva tras login o registro.
func (m *Manager) Set(user *entity.User, token string) error {
	m.current = &Session{User: user, Token: token}
	return m.persist(fileState{User: user, Token: token, ReturnTo: m.returnTo})
}

// Clear invalida la sesión local. No implica ninguna llamada al backend.
func (m *Manager) Clear() error {
	m.current = nil
	m.returnTo = ""
	err := os.Remove(m.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: eliminar %s: %w", m.path, err)
	}
	return nil
}

// Current devuelve la sesión vigente o nil.
func (m *Manager) Current() *Session {
	return m.current
}

// Token devuelve el token vigente o cadena vacía. Satisface la fuente de
// tokens del cliente REST.
func (m *Manager) Token() string {
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// IsAuthenticated informa si hay una sesión vigente.
func (m *Manager) IsAuthenticated() bool {
	return m.current != nil
}

// IsAdmin es el predicado derivado role == admin sobre la sesión vigente.
func (m *Manager) IsAdmin() bool {
	return m.current != nil && m.current.User.IsAdmin()
}

// SetReturnTo registra la vista de origen cuando un guard bloquea una
// acción, para retomar allí después del login.
func (m *Manager) SetReturnTo(view string) error {
	m.returnTo = view
	st := fileState{ReturnTo: view}
	if m.current != nil {
		st.User, st.Token = m.current.User, m.current.Token
	}
	return m.persist(st)
}

// TakeReturnTo devuelve y consume la vista de retorno pendiente.
func (m *Manager) TakeReturnTo() string {
	view := m.returnTo
	if view == "" {
		return ""
	}
	m.returnTo = ""
	st := fileState{}
	if m.current != nil {
		st.User, st.Token = m.current.User, m.current.Token
	}
	_ = m.persist(st)
	return view
}

func (m *Manager) persist(st fileState) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("session: escribir %s: %w", m.path, err)
	}
	return nil
}

// tokenExpired inspecciona el claim exp sin verificar la firma: el cliente
// no conoce el secreto del backend. Un token que no es JWT se conserva y
// será el backend quien lo rechace.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
