package dto

// ContactRequest formulario público de contacto. Nombre, email y mensaje
// son obligatorios; el resto es contexto comercial opcional.
type ContactRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
	Company         string `json:"company" validate:"omitempty,max=200"`
	ProductInterest string `json:"product_interest" validate:"omitempty,max=100"`
	Message         string `json:"message" validate:"required"`
}
