package gateway

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// CatalogGateway catálogo público de productos (sin autenticación).
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	// GetProduct acepta slug o id de producto, como el backend.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)
}

// MessageInput datos del formulario público de contacto.
type MessageInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	Message         string `json:"message"`
	ProductInterest string `json:"product_interest,omitempty"`
}

// ContactGateway envío de mensajes de contacto (sin autenticación).
type ContactGateway interface {
	SubmitMessage(ctx context.Context, in MessageInput) (*entity.ContactMessage, error)
}
