package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest formulario de registro. La confirmación de contraseña es
// puramente del cliente: nunca viaja al backend.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	CompanyName     string `json:"company_name" validate:"omitempty,max=200"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
}
