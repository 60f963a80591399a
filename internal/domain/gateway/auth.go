// Package gateway define los puertos hacia el backend Billennium.
// La fuente de verdad de cada entidad vive allí; el cliente solo consume
// estas operaciones con copias transitorias.
package gateway

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// RegisterInput datos de registro de una cuenta nueva.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// AuthGateway operaciones de autenticación contra el backend.
// Login y Register devuelven el token de acceso junto al usuario para que
// el llamador pueda ramificar por rol.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)
	Register(ctx context.Context, in RegisterInput) (token string, user *entity.User, err error)
	Me(ctx context.Context) (*entity.User, error)
}
