package gateway

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// SubscriptionInput solicitud de suscripción de un usuario autenticado.
// El backend la crea en estado pending y deshabilitada.
type SubscriptionInput struct {
	ProductID    string `json:"product_id"`
	PlanName     string `json:"plan_name"`
	BillingCycle string `json:"billing_cycle"`
}

// SubscriptionGateway operaciones de suscripción del propio usuario.
// El alcance lo impone el backend vía bearer token, nunca un id enviado
// por el cliente.
type SubscriptionGateway interface {
	CreateSubscription(ctx context.Context, in SubscriptionInput) (*entity.Subscription, error)
	ListMySubscriptions(ctx context.Context) ([]entity.Subscription, error)
}

// CompanyInput registro de una empresa por su dueño.
type CompanyInput struct {
	Name    string `json:"name"`
	RUC     string `json:"ruc,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CompanyGateway empresas del usuario autenticado.
type CompanyGateway interface {
	CreateCompany(ctx context.Context, in CompanyInput) (*entity.Company, error)
	ListMyCompanies(ctx context.Context) ([]entity.Company, error)
}
