package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// StatusPresentation etiqueta, símbolo y color de un estado de suscripción.
type StatusPresentation struct {
	Label  string
	Symbol string
	color  *color.Color
}

var statusTable = map[string]StatusPresentation{
	entity.SubscriptionPending:   {Label: "Pendiente", Symbol: "◷", color: color.New(color.FgYellow)},
	entity.SubscriptionActive:    {Label: "Activo", Symbol: "✔", color: color.New(color.FgGreen)},
	entity.SubscriptionSuspended: {Label: "Suspendido", Symbol: "!", color: color.New(color.FgHiYellow)},
	entity.SubscriptionCancelled: {Label: "Cancelado", Symbol: "✘", color: color.New(color.FgRed)},
}

// PresentStatus devuelve la presentación fija de un estado. Un estado
// desconocido usa la presentación de pending.
func PresentStatus(status string) StatusPresentation {
	if p, ok := statusTable[status]; ok {
		return p
	}
	return statusTable[entity.SubscriptionPending]
}

func (p StatusPresentation) render() string {
	return p.color.Sprintf("%s %s", p.Symbol, p.Label)
}

func renderSubscriptions(w io.Writer, subs []entity.Subscription) {
	for _, sub := range subs {
		p := PresentStatus(sub.Status)
		enabled := "deshabilitada"
		if sub.IsEnabled {
			enabled = "habilitada"
		}
		fmt.Fprintf(w, "%-14s %s  %s · plan %s (%s, %s)\n",
			p.render(), sub.ID, sub.ProductName, sub.PlanName, sub.BillingCycle, enabled)
		if sub.UserEmail != "" {
			company := sub.CompanyName
			if company == "" {
				company = "sin empresa"
			}
			fmt.Fprintf(w, "               %s <%s> · %s\n", sub.UserName, sub.UserEmail, company)
		}
	}
}

func renderProducts(w io.Writer, products []entity.Product) {
	for _, p := range products {
		fmt.Fprintf(w, "%s (%s)\n  %s\n", color.New(color.Bold).Sprint(p.Name), p.Slug, p.Description)
	}
}

func renderPlans(w io.Writer, product *entity.Product) {
	for _, plan := range product.Plans {
		name := plan.Name
		if plan.Popular {
			name += " ★"
		}
		fmt.Fprintf(w, "  %-16s antes $%s, ahora $%s/%s\n",
			name, plan.PriceBefore.StringFixed(0), plan.PriceNow.StringFixed(0), plan.Billing)
		for _, f := range plan.Features {
			fmt.Fprintf(w, "      - %s\n", f)
		}
	}
}

func renderCompanies(w io.Writer, companies []entity.Company) {
	for _, c := range companies {
		state := color.New(color.FgGreen).Sprint("activa")
		if !c.IsActive {
			state = color.New(color.FgRed).Sprint("inactiva")
		}
		products := "ninguno"
		if len(c.EnabledProducts) > 0 {
			products = strings.Join(c.EnabledProducts, ", ")
		}
		fmt.Fprintf(w, "%s  %s (%s)\n  productos habilitados: %s\n", c.ID, c.Name, state, products)
	}
}

func renderMessages(w io.Writer, msgs []entity.ContactMessage) {
	for _, m := range msgs {
		marker := color.New(color.FgCyan, color.Bold).Sprint("●")
		if m.IsRead {
			marker = " "
		}
		fmt.Fprintf(w, "%s %s  %s <%s>\n", marker, m.ID, m.Name, m.Email)
		if m.ProductInterest != "" {
			fmt.Fprintf(w, "    interés: %s\n", m.ProductInterest)
		}
		fmt.Fprintf(w, "    %s\n", m.Message)
	}
}

func renderStats(w io.Writer, s *entity.Stats) {
	fmt.Fprintf(w, "Usuarios:                 %d\n", s.TotalUsers)
	fmt.Fprintf(w, "Suscripciones:            %d\n", s.TotalSubscriptions)
	fmt.Fprintf(w, "  activas:                %d\n", s.ActiveSubscriptions)
	fmt.Fprintf(w, "  pendientes:             %d\n", s.PendingSubscriptions)
	fmt.Fprintf(w, "Empresas:                 %d\n", s.TotalCompanies)
	fmt.Fprintf(w, "Mensajes de contacto:     %d\n", s.TotalMessages)
	fmt.Fprintf(w, "  sin leer:               %d\n", s.UnreadMessages)
}
