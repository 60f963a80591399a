// Package admin implementa el back-office del portal: gestión de
// suscripciones, usuarios, empresas, mensajes de contacto y métricas.
// Todas las operaciones exigen una sesión con rol admin antes de emitir red.
package admin

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

// UseCase casos de uso administrativos.
type UseCase struct {
	gw       gateway.AdminGateway
	sessions *session.Manager
	log      *logger.Logger
}

// NewUseCase construye el caso de uso administrativo.
func NewUseCase(gw gateway.AdminGateway, sessions *session.Manager, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, sessions: sessions, log: log}
}

// requireAdmin es el guard de todas las operaciones del paquete: sin sesión
// se pide login; con sesión sin rol admin se niega el acceso. En ambos
// casos no se toca la red.
func (uc *UseCase) requireAdmin() error {
	if !uc.sessions.IsAuthenticated() {
		return domain.ErrLoginRequired
	}
	if !uc.sessions.IsAdmin() {
		return domain.ErrAdminRequired
	}
	return nil
}

// Stats lee los agregados del dashboard. Puramente presentacional: ningún
// conteo se calcula del lado del cliente.
func (uc *UseCase) Stats(ctx context.Context) (*entity.Stats, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.Stats(ctx)
}

// ListSubscriptions lista las suscripciones de todos los usuarios.
func (uc *UseCase) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.ListSubscriptions(ctx)
}

// ToggleSubscription invierte is_enabled de una suscripción. El estado
// resultante (active al habilitar, suspended al deshabilitar) lo decide el
// backend; aquí se aplica la entidad devuelta tal cual, sin rederivar.
// Dos toggles seguidos dejan la pareja (is_enabled, status) como estaba.
func (uc *UseCase) ToggleSubscription(ctx context.Context, id string) (*entity.Subscription, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}

	subs, err := uc.gw.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	var current *entity.Subscription
	for i := range subs {
		if subs[i].ID == id {
			current = &subs[i]
			break
		}
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	updated, err := uc.gw.UpdateSubscription(ctx, id, !current.IsEnabled)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("subscription_id", updated.ID).
		Bool("is_enabled", updated.IsEnabled).
		Str("status", updated.Status).
		Msg("suscripción actualizada")
	return updated, nil
}

// Grant crea una suscripción directamente para un usuario, saltando el
// flujo de solicitud pendiente.
func (uc *UseCase) Grant(ctx context.Context, in dto.GrantRequest) (*entity.Subscription, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.BillingCycle == "" {
		in.BillingCycle = "monthly"
	}
	return uc.gw.GrantSubscription(ctx, gateway.GrantInput{
		UserID:       in.UserID,
		ProductID:    in.ProductID,
		PlanName:     in.PlanName,
		BillingCycle: in.BillingCycle,
	})
}

// ListUsers lista todas las cuentas del portal.
func (uc *UseCase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.ListUsers(ctx)
}

// ToggleUserActive invierte is_active de una cuenta. Las cuentas nunca se
// eliminan, solo se desactivan.
func (uc *UseCase) ToggleUserActive(ctx context.Context, id string) (*entity.User, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.ToggleUserActive(ctx, id)
}

// ListCompanies lista todas las empresas registradas.
func (uc *UseCase) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.ListCompanies(ctx)
}

// SetCompanyProducts reemplaza por completo el conjunto de productos
// habilitados de una empresa. No es un merge: lo que no viene en products
// queda deshabilitado.
func (uc *UseCase) SetCompanyProducts(ctx context.Context, companyID string, products []string) (*entity.Company, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	if products == nil {
		products = []string{}
	}
	company, err := uc.gw.UpdateCompany(ctx, companyID, gateway.CompanyUpdate{EnabledProducts: &products})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", company.ID).
		Strs("enabled_products", company.EnabledProducts).
		Msg("productos de empresa actualizados")
	return company, nil
}

// ToggleCompanyActive invierte is_active de una empresa sin tocar sus
// productos habilitados.
func (uc *UseCase) ToggleCompanyActive(ctx context.Context, companyID string) (*entity.Company, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}

	companies, err := uc.gw.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	var current *entity.Company
	for i := range companies {
		if companies[i].ID == companyID {
			current = &companies[i]
			break
		}
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	active := !current.IsActive
	return uc.gw.UpdateCompany(ctx, companyID, gateway.CompanyUpdate{IsActive: &active})
}

// ListMessages lista los mensajes de contacto recibidos.
func (uc *UseCase) ListMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	if err := uc.requireAdmin(); err != nil {
		return nil, err
	}
	return uc.gw.ListMessages(ctx)
}

// MarkMessageRead marca un mensaje como leído. Es unidireccional: no existe
// volver a no-leído, ni se marca nada automáticamente al listar.
func (uc *UseCase) MarkMessageRead(ctx context.Context, id string) error {
	if err := uc.requireAdmin(); err != nil {
		return err
	}
	return uc.gw.MarkMessageRead(ctx, id)
}
