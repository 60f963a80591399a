package entity

import "time"

// Estados del ciclo de vida de una suscripción.
// pending → active ⇄ suspended; cualquiera de los tres puede pasar a
// cancelled, pero ese camino solo lo recorre el backend.
const (
	SubscriptionPending   = "pending"
	SubscriptionActive    = "active"
	SubscriptionSuspended = "suspended"
	SubscriptionCancelled = "cancelled"
)

// Subscription es la solicitud (y concesión) de acceso de un usuario a un
// producto+plan. Nace pending/deshabilitada; el toggle de un admin la mueve
// entre active y suspended manteniendo IsEnabled y Status en paralelo.
type Subscription struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	UserName     string     `json:"user_name"`
	CompanyName  string     `json:"company_name,omitempty"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name"`
	PlanName     string     `json:"plan_name"`
	BillingCycle string     `json:"billing_cycle"`
	IsEnabled    bool       `json:"is_enabled"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	EnabledAt    *time.Time `json:"enabled_at,omitempty"`
	EnabledBy    string     `json:"enabled_by,omitempty"`
}
