// Package cli expone los flujos del portal como subcomandos de terminal.
// Cada comando es el equivalente de una vista del portal: monta, dispara
// sus peticiones y presenta el resultado.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ErnestEguez/websitebillennium/internal/application/admin"
	"github.com/ErnestEguez/websitebillennium/internal/application/auth"
	"github.com/ErnestEguez/websitebillennium/internal/application/catalog"
	"github.com/ErnestEguez/websitebillennium/internal/application/contact"
	"github.com/ErnestEguez/websitebillennium/internal/application/subscriptions"
	"github.com/ErnestEguez/websitebillennium/internal/domain"
	"github.com/ErnestEguez/websitebillennium/internal/session"
	"github.com/ErnestEguez/websitebillennium/internal/validation"
	"github.com/ErnestEguez/websitebillennium/pkg/logger"
)

// App agrupa los casos de uso del portal y despacha subcomandos.
type App struct {
	Auth          *auth.UseCase
	Catalog       *catalog.UseCase
	Contact       *contact.UseCase
	Subscriptions *subscriptions.UseCase
	Companies     *subscriptions.CompanyUseCase
	Admin         *admin.UseCase
	Sessions      *session.Manager
	Log           *logger.Logger
	Out           io.Writer
}

// Run despacha el subcomando indicado. Devuelve error si el comando no
// existe, si sus flags son inválidos o si el flujo subyacente falla.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami(ctx)
	case "products":
		return a.cmdProducts(ctx)
	case "product":
		return a.cmdProductDetail(ctx, rest)
	case "contact":
		return a.cmdContact(ctx, rest)
	case "subscribe":
		return a.cmdSubscribe(ctx, rest)
	case "subscriptions":
		return a.cmdMySubscriptions(ctx)
	case "companies":
		return a.cmdMyCompanies(ctx)
	case "company-register":
		return a.cmdCompanyRegister(ctx, rest)
	case "admin":
		return a.runAdmin(ctx, rest)
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		return fmt.Errorf("comando desconocido: %s (usa `portal help`)", cmd)
	}
}

func (a *App) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("falta el subcomando de admin (usa `portal help`)")
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "stats":
		return a.cmdAdminStats(ctx)
	case "subscriptions":
		return a.cmdAdminSubscriptions(ctx, rest)
	case "toggle":
		return a.cmdAdminToggle(ctx, rest)
	case "grant":
		return a.cmdAdminGrant(ctx, rest)
	case "users":
		return a.cmdAdminUsers(ctx)
	case "user-toggle":
		return a.cmdAdminUserToggle(ctx, rest)
	case "companies":
		return a.cmdAdminCompanies(ctx)
	case "company-products":
		return a.cmdAdminCompanyProducts(ctx, rest)
	case "company-toggle":
		return a.cmdAdminCompanyToggle(ctx, rest)
	case "messages":
		return a.cmdAdminMessages(ctx, rest)
	case "message-read":
		return a.cmdAdminMessageRead(ctx, rest)
	default:
		return fmt.Errorf("subcomando de admin desconocido: %s", cmd)
	}
}

// UserError traduce un error de flujo al mensaje que vería el usuario del
// portal: mensajes de validación, el detail del backend cuando existe, o
// el texto de reserva del comando.
func UserError(err error, fallback string) string {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, domain.ErrLoginRequired):
		return "Debes iniciar sesión (usa `portal login`)"
	case errors.Is(err, domain.ErrAdminRequired):
		return "Acceso denegado. Se requiere rol de administrador"
	case errors.Is(err, domain.ErrProductNotFound):
		return "Producto no encontrado"
	case errors.Is(err, domain.ErrNotFound):
		return "Recurso no encontrado"
	default:
		return domain.UserMessage(err, fallback)
	}
}

func (a *App) printUsage() {
	fmt.Fprint(a.Out, `Portal Billennium System

Uso: portal <comando> [flags]

Comandos públicos:
  products                 catálogo de productos
  product <slug>           ficha de producto, planes y preguntas frecuentes
  contact                  enviar un mensaje de contacto
  register                 crear una cuenta
  login                    iniciar sesión

Comandos de usuario:
  subscribe                solicitar la suscripción a un producto+plan
  subscriptions            mis suscripciones
  companies                mis empresas
  company-register         registrar una empresa
  whoami                   perfil de la sesión vigente
  logout                   cerrar sesión

Comandos de administración (rol admin):
  admin stats              métricas del sistema
  admin subscriptions      listar/filtrar/agrupar suscripciones
  admin toggle             habilitar o deshabilitar una suscripción
  admin grant              otorgar una suscripción a un usuario
  admin users              listar usuarios
  admin user-toggle        activar o desactivar un usuario
  admin companies          listar empresas
  admin company-products   reemplazar productos habilitados de una empresa
  admin company-toggle     activar o desactivar una empresa
  admin messages           mensajes de contacto
  admin message-read       marcar un mensaje como leído
`)
}
