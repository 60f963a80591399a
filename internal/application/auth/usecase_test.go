package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
	"github.com/ErnestEguez/websitebillennium/internal/session"
	"github.com/ErnestEguez/websitebillennium/internal/validation"
	"github.com/ErnestEguez/websitebillennium/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del gateway
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthGateway cuenta llamadas y devuelve respuestas programadas.
type fakeAuthGateway struct {
	loginCalls    int
	registerCalls int
	token         string
	user          *entity.User
	err           error
}

func (f *fakeAuthGateway) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	f.loginCalls++
	return f.token, f.user, f.err
}

func (f *fakeAuthGateway) Register(ctx context.Context, in gateway.RegisterInput) (string, *entity.User, error) {
	f.registerCalls++
	return f.token, f.user, f.err
}

func (f *fakeAuthGateway) Me(ctx context.Context) (*entity.User, error) {
	return f.user, f.err
}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m := session.NewManager(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, m.Hydrate())
	return m
}

func validUser() *entity.User {
	return &entity.User{ID: "u-1", Email: "carla@acme.ec", Name: "Carla", Role: entity.RoleUser, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_InstalaSesion(t *testing.T) {
	gw := &fakeAuthGateway{token: "tok-1", user: validUser()}
	sessions := newSessions(t)
	uc := NewUseCase(gw, sessions, logger.Nop())

	user, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carla@acme.ec", Password: "secreta"})
	require.NoError(t, err)

	assert.Equal(t, "carla@acme.ec", user.Email)
	assert.True(t, sessions.IsAuthenticated())
	assert.Equal(t, "tok-1", sessions.Token())
}

// Un rechazo del backend deja la sesión local exactamente como estaba y el
// error conserva el mensaje para el usuario.
func TestLogin_RechazoNoTocaLaSesion(t *testing.T) {
	gw := &fakeAuthGateway{err: &domain.APIError{StatusCode: 401, Detail: "Credenciales inválidas"}}
	sessions := newSessions(t)
	uc := NewUseCase(gw, sessions, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carla@acme.ec", Password: "mala"})
	require.Error(t, err)

	assert.False(t, sessions.IsAuthenticated(), "la sesión no debe instalarse con credenciales rechazadas")
	assert.Equal(t, "Credenciales inválidas", domain.UserMessage(err, "Error al iniciar sesión"))
}

// Con el formulario incompleto no se emite red: validación primero.
func TestLogin_FormularioInvalidoNoLlamaAlBackend(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc := NewUseCase(gw, newSessions(t), logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "no-es-email", Password: ""})
	require.Error(t, err)

	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr, "debe ser un error de validación")
	assert.Zero(t, gw.loginCalls, "el gateway no debe invocarse con formulario inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_InstalaSesion(t *testing.T) {
	gw := &fakeAuthGateway{token: "tok-nuevo", user: validUser()}
	sessions := newSessions(t)
	uc := NewUseCase(gw, sessions, logger.Nop())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:            "Carla",
		Email:           "carla@acme.ec",
		Password:        "secreta",
		ConfirmPassword: "secreta",
	})
	require.NoError(t, err)
	assert.True(t, sessions.IsAuthenticated(), "el registro exitoso inicia sesión de inmediato")
}

func TestRegister_ContrasenasDistintasNoLlamaAlBackend(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc := NewUseCase(gw, newSessions(t), logger.Nop())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:            "Carla",
		Email:           "carla@acme.ec",
		Password:        "secreta",
		ConfirmPassword: "otra",
	})
	require.Error(t, err)
	assert.Zero(t, gw.registerCalls)
}

func TestRegister_ContrasenaCortaNoLlamaAlBackend(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc := NewUseCase(gw, newSessions(t), logger.Nop())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:            "Carla",
		Email:           "carla@acme.ec",
		Password:        "corta",
		ConfirmPassword: "corta",
	})
	require.Error(t, err)
	assert.Zero(t, gw.registerCalls, "una contraseña menor a 6 caracteres no debe viajar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DescartaSesionLocal(t *testing.T) {
	gw := &fakeAuthGateway{token: "tok", user: validUser()}
	sessions := newSessions(t)
	uc := NewUseCase(gw, sessions, logger.Nop())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carla@acme.ec", Password: "secreta"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout())
	assert.False(t, sessions.IsAuthenticated())
}

func TestMe_SinSesion(t *testing.T) {
	uc := NewUseCase(&fakeAuthGateway{}, newSessions(t), logger.Nop())

	_, err := uc.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoginRequired)
}
