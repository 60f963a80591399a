// Package subscriptions implementa las suscripciones del propio usuario:
// solicitar un plan y listar las suscripciones vigentes.
package subscriptions

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

// UseCase suscripciones del usuario autenticado. El alcance por usuario lo
// impone el backend vía bearer token.
type UseCase struct {
	gw       gateway.SubscriptionGateway
	sessions *session.Manager
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de suscripciones.
func NewUseCase(gw gateway.SubscriptionGateway, sessions *session.Manager, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, sessions: sessions, log: log}
}

// Request solicita la suscripción a un producto+plan. Si no hay sesión,
// registra origin como vista de retorno y devuelve ErrLoginRequired sin
// emitir red: tras el login el usuario retoma desde allí. El backend crea
// la suscripción en pending/deshabilitada.
func (uc *UseCase) Request(ctx context.Context, in dto.SubscribeRequest, origin string) (*entity.Subscription, error) {
	if !uc.sessions.IsAuthenticated() {
		if origin != "" {
			_ = uc.sessions.SetReturnTo(origin)
		}
		return nil, domain.ErrLoginRequired
	}
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	in.Normalize()
	sub, err := uc.gw.CreateSubscription(ctx, gateway.SubscriptionInput{
		ProductID:    in.ProductID,
		PlanName:     in.PlanName,
		BillingCycle: in.BillingCycle,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", sub.ProductID).
		Str("plan", sub.PlanName).
		Str("status", sub.Status).
		Msg("suscripción solicitada")
	return sub, nil
}

// ListMine lista las suscripciones del usuario autenticado. Una lista vacía
// no es un error: la vista muestra un estado vacío con llamada a la acción.
func (uc *UseCase) ListMine(ctx context.Context) ([]entity.Subscription, error) {
	if !uc.sessions.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}
	return uc.gw.ListMySubscriptions(ctx)
}

// CompanyUseCase empresas del propio usuario: registro y listado.
type CompanyUseCase struct {
	gw       gateway.CompanyGateway
	sessions *session.Manager
}

// NewCompanyUseCase construye el caso de uso de empresas propias.
func NewCompanyUseCase(gw gateway.CompanyGateway, sessions *session.Manager) *CompanyUseCase {
	return &CompanyUseCase{gw: gw, sessions: sessions}
}

// Register registra una empresa a nombre del usuario autenticado.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.CompanyRequest) (*entity.Company, error) {
	if !uc.sessions.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	return uc.gw.CreateCompany(ctx, gateway.CompanyInput{
		Name:    in.Name,
		RUC:     in.RUC,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
}

// ListMine lista las empresas del usuario autenticado.
func (uc *CompanyUseCase) ListMine(ctx context.Context) ([]entity.Company, error) {
	if !uc.sessions.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}
	return uc.gw.ListMyCompanies(ctx)
}
