package entity

import "time"

// ContactMessage es un mensaje del formulario público de contacto.
// IsRead solo avanza en un sentido: no existe "marcar como no leído".
type ContactMessage struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	Message         string    `json:"message"`
	ProductInterest string    `json:"product_interest,omitempty"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}
