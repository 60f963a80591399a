package rest

import (
	"context"
	"net/url"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
)

// Verificación en compilación de que Client cubre todos los puertos.
var (
	_ gateway.AuthGateway         = (*Client)(nil)
	_ gateway.CatalogGateway      = (*Client)(nil)
	_ gateway.ContactGateway      = (*Client)(nil)
	_ gateway.SubscriptionGateway = (*Client)(nil)
	_ gateway.CompanyGateway      = (*Client)(nil)
	_ gateway.AdminGateway        = (*Client)(nil)
)

// tokenResponse respuesta de login/registro del backend.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        entity.User `json:"user"`
}

// Login intercambia credenciales por token + usuario.
func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	in := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := c.post(ctx, "/auth/login", in, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

// Register crea la cuenta y devuelve la sesión recién emitida.
func (c *Client) Register(ctx context.Context, in gateway.RegisterInput) (string, *entity.User, error) {
	var out tokenResponse
	if err := c.post(ctx, "/auth/register", in, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

// Me devuelve el perfil asociado al token vigente.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.get(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	var out entity.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitMessage(ctx context.Context, in gateway.MessageInput) (*entity.ContactMessage, error) {
	var out entity.ContactMessage
	if err := c.post(ctx, "/contact", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSubscription(ctx context.Context, in gateway.SubscriptionInput) (*entity.Subscription, error) {
	var out entity.Subscription
	if err := c.post(ctx, "/subscriptions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMySubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var out []entity.Subscription
	if err := c.get(ctx, "/subscriptions/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCompany(ctx context.Context, in gateway.CompanyInput) (*entity.Company, error) {
	var out entity.Company
	if err := c.post(ctx, "/companies", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyCompanies(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	if err := c.get(ctx, "/companies/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stats(ctx context.Context) (*entity.Stats, error) {
	var out entity.Stats
	if err := c.get(ctx, "/admin/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var out []entity.Subscription
	if err := c.get(ctx, "/admin/subscriptions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSubscription habilita o deshabilita una suscripción. El backend
// devuelve la entidad actualizada con el status que él decidió; el cliente
// la aplica sin recalcular nada.
func (c *Client) UpdateSubscription(ctx context.Context, id string, enabled bool) (*entity.Subscription, error) {
	in := map[string]bool{"is_enabled": enabled}
	var out entity.Subscription
	if err := c.put(ctx, "/admin/subscriptions/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GrantSubscription(ctx context.Context, in gateway.GrantInput) (*entity.Subscription, error) {
	var out entity.Subscription
	if err := c.post(ctx, "/admin/subscriptions/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := c.get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ToggleUserActive(ctx context.Context, id string) (*entity.User, error) {
	var out entity.User
	if err := c.put(ctx, "/admin/users/"+url.PathEscape(id)+"/toggle-active", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	if err := c.get(ctx, "/admin/companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCompany(ctx context.Context, id string, in gateway.CompanyUpdate) (*entity.Company, error) {
	var out entity.Company
	if err := c.put(ctx, "/admin/companies/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	var out []entity.ContactMessage
	if err := c.get(ctx, "/admin/messages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.put(ctx, "/admin/messages/"+url.PathEscape(id)+"/read", struct{}{}, nil)
}
