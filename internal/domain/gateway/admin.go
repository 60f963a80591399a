package gateway

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// GrantInput alta directa de una suscripción por un admin, saltando el
// flujo de solicitud pendiente.
type GrantInput struct {
	UserID       string `json:"user_id"`
	ProductID    string `json:"product_id"`
	PlanName     string `json:"plan_name"`
	BillingCycle string `json:"billing_cycle,omitempty"`
}

// CompanyUpdate actualización parcial de una empresa. EnabledProducts es un
// reemplazo completo del conjunto, no un delta.
type CompanyUpdate struct {
	EnabledProducts *[]string `json:"enabled_products,omitempty"`
	IsActive        *bool     `json:"is_active,omitempty"`
}

// AdminGateway operaciones del back-office. Las mutaciones devuelven la
// entidad actualizada tal como la persistió el backend, y el cliente la
// aplica sin rederivar estado.
type AdminGateway interface {
	Stats(ctx context.Context) (*entity.Stats, error)

	ListSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	UpdateSubscription(ctx context.Context, id string, enabled bool) (*entity.Subscription, error)
	GrantSubscription(ctx context.Context, in GrantInput) (*entity.Subscription, error)

	ListUsers(ctx context.Context) ([]entity.User, error)
	ToggleUserActive(ctx context.Context, id string) (*entity.User, error)

	ListCompanies(ctx context.Context) ([]entity.Company, error)
	UpdateCompany(ctx context.Context, id string, in CompanyUpdate) (*entity.Company, error)

	ListMessages(ctx context.Context) ([]entity.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id string) error
}
