package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/ErnestEguez/websitebillennium/internal/application/admin"
	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

func (a *App) cmdAdminStats(ctx context.Context) error {
	stats, err := a.Admin.Stats(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar las estadísticas"))
	}
	renderStats(a.Out, stats)
	return nil
}

func (a *App) cmdAdminSubscriptions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin subscriptions", flag.ContinueOnError)
	query := fs.String("search", "", "buscar por nombre, email, producto o empresa")
	status := fs.String("status", admin.StatusAll, "filtrar por estado (pending|active|suspended|cancelled|all)")
	grouped := fs.Bool("by-user", false, "agrupar por usuario")
	if err := fs.Parse(args); err != nil {
		return err
	}

	subs, err := a.Admin.ListSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar las suscripciones"))
	}

	filtered := admin.FilterSubscriptions(subs, *query, *status)
	if len(filtered) == 0 {
		fmt.Fprintln(a.Out, "No se encontraron suscripciones con los filtros aplicados.")
		return nil
	}

	if *grouped {
		for _, g := range admin.GroupByUser(filtered) {
			fmt.Fprintf(a.Out, "%s <%s>\n", g.UserName, g.UserEmail)
			renderSubscriptions(a.Out, g.Subscriptions)
		}
		return nil
	}
	renderSubscriptions(a.Out, filtered)
	return nil
}

func (a *App) cmdAdminToggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: portal admin toggle <subscription-id>")
	}
	sub, err := a.Admin.ToggleSubscription(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al actualizar la suscripción"))
	}
	action := "deshabilitada"
	if sub.IsEnabled {
		action = "habilitada"
	}
	fmt.Fprintf(a.Out, "Suscripción %s → %s\n", action, PresentStatus(sub.Status).Label)
	return nil
}

func (a *App) cmdAdminGrant(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin grant", flag.ContinueOnError)
	var in dto.GrantRequest
	fs.StringVar(&in.UserID, "user", "", "id del usuario")
	fs.StringVar(&in.ProductID, "product", "", "id del producto")
	fs.StringVar(&in.PlanName, "plan", "", "nombre del plan")
	fs.StringVar(&in.BillingCycle, "billing", "", "ciclo de facturación (monthly|yearly)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sub, err := a.Admin.Grant(ctx, in)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al crear la suscripción"))
	}
	fmt.Fprintf(a.Out, "Suscripción otorgada: %s · plan %s para %s\n", sub.ProductName, sub.PlanName, sub.UserEmail)
	return nil
}

func (a *App) cmdAdminUsers(ctx context.Context) error {
	users, err := a.Admin.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar los usuarios"))
	}
	for _, u := range users {
		state := "activo"
		if !u.IsActive {
			state = "desactivado"
		}
		fmt.Fprintf(a.Out, "%s  %-8s %-12s %s <%s>\n", u.ID, u.Role, state, u.Name, u.Email)
	}
	return nil
}

func (a *App) cmdAdminUserToggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: portal admin user-toggle <user-id>")
	}
	user, err := a.Admin.ToggleUserActive(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al actualizar el usuario"))
	}
	if user.IsActive {
		fmt.Fprintln(a.Out, "Usuario activado correctamente")
	} else {
		fmt.Fprintln(a.Out, "Usuario desactivado correctamente")
	}
	return nil
}

func (a *App) cmdAdminCompanies(ctx context.Context) error {
	companies, err := a.Admin.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar las empresas"))
	}
	if len(companies) == 0 {
		fmt.Fprintln(a.Out, "No hay empresas registradas.")
		return nil
	}
	renderCompanies(a.Out, companies)
	return nil
}

func (a *App) cmdAdminCompanyProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin company-products", flag.ContinueOnError)
	companyID := fs.String("company", "", "id de la empresa")
	productsCSV := fs.String("products", "", "ids de producto separados por coma (conjunto completo)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *companyID == "" {
		return errors.New("uso: portal admin company-products -company <id> -products <id,id>")
	}

	var products []string
	for _, p := range strings.Split(*productsCSV, ",") {
		if p = strings.TrimSpace(p); p != "" {
			products = append(products, p)
		}
	}

	company, err := a.Admin.SetCompanyProducts(ctx, *companyID, products)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al actualizar los productos"))
	}
	fmt.Fprintln(a.Out, "Productos actualizados correctamente")
	renderCompanies(a.Out, []entity.Company{*company})
	return nil
}

func (a *App) cmdAdminCompanyToggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: portal admin company-toggle <company-id>")
	}
	company, err := a.Admin.ToggleCompanyActive(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al actualizar la empresa"))
	}
	if company.IsActive {
		fmt.Fprintln(a.Out, "Empresa activada")
	} else {
		fmt.Fprintln(a.Out, "Empresa desactivada")
	}
	return nil
}

func (a *App) cmdAdminMessages(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin messages", flag.ContinueOnError)
	query := fs.String("search", "", "buscar por nombre, email, empresa o mensaje")
	if err := fs.Parse(args); err != nil {
		return err
	}

	msgs, err := a.Admin.ListMessages(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar los mensajes"))
	}

	filtered := admin.FilterMessages(msgs, *query)
	if len(filtered) == 0 {
		fmt.Fprintln(a.Out, "No hay mensajes.")
		return nil
	}
	renderMessages(a.Out, filtered)
	return nil
}

func (a *App) cmdAdminMessageRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: portal admin message-read <message-id>")
	}
	if err := a.Admin.MarkMessageRead(ctx, args[0]); err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al actualizar el mensaje"))
	}
	fmt.Fprintln(a.Out, "Mensaje marcado como leído")
	return nil
}
