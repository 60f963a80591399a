package entity

import "time"

// Company es la empresa de un usuario del portal. EnabledProducts es el
// conjunto de productos habilitados (entitlement), independiente del estado
// de facturación de las suscripciones.
type Company struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	RUC             string    `json:"ruc,omitempty"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	OwnerID         string    `json:"owner_id"`
	EnabledProducts []string  `json:"enabled_products"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// HasProduct informa si el producto está en el conjunto habilitado.
func (c *Company) HasProduct(productID string) bool {
	for _, id := range c.EnabledProducts {
		if id == productID {
			return true
		}
	}
	return false
}
