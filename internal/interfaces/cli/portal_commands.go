package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain"
)

// viewPlans identifica la vista de planes como origen del flujo de
// suscripción, para retomarla después del login.
const viewPlans = "/planes"

func (a *App) cmdProducts(ctx context.Context) error {
	products, err := a.Catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar los productos"))
	}
	if len(products) == 0 {
		fmt.Fprintln(a.Out, "No hay productos disponibles por el momento.")
		return nil
	}
	renderProducts(a.Out, products)
	return nil
}

func (a *App) cmdProductDetail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: portal product <slug>")
	}
	product, err := a.Catalog.GetProduct(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar el producto"))
	}

	fmt.Fprintf(a.Out, "%s\n%s\n\n", product.Name, product.Description)
	for _, f := range product.Features {
		fmt.Fprintf(a.Out, "  • %s\n", f)
	}
	fmt.Fprintln(a.Out, "\nPlanes:")
	renderPlans(a.Out, product)

	if extras, ok := a.Catalog.Extras(product.ID); ok {
		fmt.Fprintf(a.Out, "\n%s\n", extras.Problem)
		fmt.Fprintln(a.Out, "\nBeneficios:")
		for _, b := range extras.Benefits {
			fmt.Fprintf(a.Out, "  • %s\n", b)
		}
		fmt.Fprintln(a.Out, "\nPreguntas frecuentes:")
		for _, faq := range extras.FAQs {
			fmt.Fprintf(a.Out, "  %s\n  %s\n", faq.Question, faq.Answer)
		}
	}
	return nil
}

func (a *App) cmdContact(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	var in dto.ContactRequest
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Email, "email", "", "correo electrónico")
	fs.StringVar(&in.Phone, "phone", "", "teléfono (opcional)")
	fs.StringVar(&in.Company, "company", "", "empresa (opcional)")
	fs.StringVar(&in.ProductInterest, "product", "", "producto de interés (opcional)")
	fs.StringVar(&in.Message, "message", "", "mensaje")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.Contact.Submit(ctx, in); err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al enviar el mensaje. Intenta de nuevo."))
	}
	fmt.Fprintln(a.Out, "¡Mensaje enviado! Nos pondremos en contacto pronto.")
	return nil
}

func (a *App) cmdSubscribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	var in dto.SubscribeRequest
	fs.StringVar(&in.ProductID, "product", "", "id del producto")
	fs.StringVar(&in.PlanName, "plan", "", "nombre del plan")
	fs.StringVar(&in.BillingCycle, "billing", "", "ciclo de facturación (monthly|yearly)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sub, err := a.Subscriptions.Request(ctx, in, viewPlans)
	if err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			fmt.Fprintln(a.Out, "Debes iniciar sesión para suscribirte")
			fmt.Fprintln(a.Out, "Inicia sesión con `portal login` y vuelve a intentarlo.")
			return err
		}
		return fmt.Errorf("%s", UserError(err, "Error al procesar la suscripción"))
	}

	fmt.Fprintln(a.Out, "¡Solicitud enviada! Un administrador revisará tu suscripción.")
	fmt.Fprintf(a.Out, "%s · plan %s → %s\n", sub.ProductName, sub.PlanName, PresentStatus(sub.Status).Label)
	return nil
}

func (a *App) cmdMySubscriptions(ctx context.Context) error {
	subs, err := a.Subscriptions.ListMine(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar las suscripciones"))
	}
	if len(subs) == 0 {
		fmt.Fprintln(a.Out, "Aún no tienes suscripciones.")
		fmt.Fprintln(a.Out, "Explora el catálogo con `portal products` y solicita un plan con `portal subscribe`.")
		return nil
	}
	renderSubscriptions(a.Out, subs)
	return nil
}

func (a *App) cmdMyCompanies(ctx context.Context) error {
	companies, err := a.Companies.ListMine(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al cargar las empresas"))
	}
	if len(companies) == 0 {
		fmt.Fprintln(a.Out, "Aún no has registrado empresas. Usa `portal company-register`.")
		return nil
	}
	renderCompanies(a.Out, companies)
	return nil
}

func (a *App) cmdCompanyRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("company-register", flag.ContinueOnError)
	var in dto.CompanyRequest
	fs.StringVar(&in.Name, "name", "", "razón social")
	fs.StringVar(&in.RUC, "ruc", "", "RUC (13 dígitos, opcional)")
	fs.StringVar(&in.Email, "email", "", "correo electrónico")
	fs.StringVar(&in.Phone, "phone", "", "teléfono (opcional)")
	fs.StringVar(&in.Address, "address", "", "dirección (opcional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	company, err := a.Companies.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al registrar la empresa"))
	}
	fmt.Fprintf(a.Out, "Empresa %s registrada (id %s)\n", company.Name, company.ID)
	return nil
}
