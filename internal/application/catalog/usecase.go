// Package catalog expone el catálogo público de productos y el contenido
// comercial asociado (beneficios y preguntas frecuentes por producto).
package catalog

import (
	"context"
	"errors"

	"github.com/ErnestEguez/websitebillennium/internal/domain"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
)

// UseCase catálogo de productos. Los productos vienen del backend; el
// contenido comercial vive en un archivo embebido editable sin tocar lógica.
type UseCase struct {
	gw     gateway.CatalogGateway
	extras map[string]ProductExtras
}

// NewUseCase construye el caso de uso y carga el contenido comercial
// embebido. Falla solo si el YAML embebido es inválido.
func NewUseCase(gw gateway.CatalogGateway) (*UseCase, error) {
	extras, err := loadExtras()
	if err != nil {
		return nil, err
	}
	return &UseCase{gw: gw, extras: extras}, nil
}

// ListProducts devuelve el catálogo completo.
func (uc *UseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return uc.gw.ListProducts(ctx)
}

// GetProduct busca por slug o id. Un 404 del backend se traduce a
// domain.ErrProductNotFound.
func (uc *UseCase) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := uc.gw.GetProduct(ctx, slug)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Extras devuelve el contenido comercial de un producto, por id.
func (uc *UseCase) Extras(productID string) (ProductExtras, bool) {
	ex, ok := uc.extras[productID]
	return ex, ok
}
