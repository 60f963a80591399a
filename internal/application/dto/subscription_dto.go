package dto

// SubscribeRequest solicitud de suscripción a un producto+plan.
type SubscribeRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	PlanName     string `json:"plan_name" validate:"required"`
	BillingCycle string `json:"billing_cycle" validate:"omitempty,oneof=monthly yearly"`
}

// Normalize aplica la cadencia por defecto del backend.
func (r *SubscribeRequest) Normalize() {
	if r.BillingCycle == "" {
		r.BillingCycle = "monthly"
	}
}

// GrantRequest alta directa de suscripción por un administrador.
type GrantRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	PlanName     string `json:"plan_name" validate:"required"`
	BillingCycle string `json:"billing_cycle" validate:"omitempty,oneof=monthly yearly"`
}

// CompanyRequest registro de una empresa por su dueño.
type CompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	RUC     string `json:"ruc" validate:"omitempty,len=13,numeric"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
}
