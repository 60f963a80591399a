// Package auth implementa los flujos de sesión del portal: login, registro,
// logout y consulta del perfil vigente.
package auth

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
	"github.com/ErnestEguez/websitebillennium/internal/session"
	"github.com/ErnestEguez/websitebillennium/internal/validation"
	"github.com/ErnestEguez/websitebillennium/pkg/logger"
)

// UseCase casos de uso de autenticación. La validación corre del lado del
// cliente antes de tocar la red; los rechazos del backend se devuelven tal
// cual para mostrarlos al usuario.
type UseCase struct {
	gw       gateway.AuthGateway
	sessions *session.Manager
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(gw gateway.AuthGateway, sessions *session.Manager, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, sessions: sessions, log: log}
}

// Login envía las credenciales al backend y, si son válidas, instala la
// sesión. Ante rechazo la sesión local queda intacta. Devuelve el usuario
// para que el llamador ramifique por rol.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	token, user, err := uc.gw.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Set(user, token); err != nil {
		return nil, err
	}

	uc.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("sesión iniciada")
	return user, nil
}

// Register valida el formulario (campos requeridos, contraseña mínima de 6,
// confirmación igual) sin emitir red si falla, y ante éxito instala la
// sesión que el backend emite junto a la cuenta nueva.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	token, user, err := uc.gw.Register(ctx, gateway.RegisterInput{
		Name:        in.Name,
		Email:       in.Email,
		Password:    in.Password,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Set(user, token); err != nil {
		return nil, err
	}

	uc.log.Info().Str("email", user.Email).Msg("cuenta creada")
	return user, nil
}

// Logout descarta la sesión local. El token no se revoca en el backend;
// simplemente deja de usarse.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}

// Me consulta el perfil asociado al token vigente.
func (uc *UseCase) Me(ctx context.Context) (*entity.User, error) {
	if !uc.sessions.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}
	return uc.gw.Me(ctx)
}
