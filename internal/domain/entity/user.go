package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta del portal Billennium. Las cuentas nunca se
// eliminan: un admin las desactiva con IsActive.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"` // user | admin
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// IsAdmin es el predicado derivado de rol; no hay más roles intermedios.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
