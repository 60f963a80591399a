package admin

import (
	"strings"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// StatusAll desactiva el filtro por estado.
const StatusAll = "all"

// Los filtros de este archivo son funciones puras sobre datos ya traídos
// del backend: no hay búsqueda ni paginación del lado del servidor.

// FilterSubscriptions aplica búsqueda de subcadena (insensible a
// mayúsculas, sobre usuario, email, producto y empresa) y filtro exacto por
// estado. Ambos criterios son conjuntivos; query o status vacíos/all no
// restringen.
func FilterSubscriptions(subs []entity.Subscription, query, status string) []entity.Subscription {
	out := make([]entity.Subscription, 0, len(subs))
	for _, sub := range subs {
		if !matchesQuery(query, sub.UserName, sub.UserEmail, sub.ProductName, sub.CompanyName) {
			continue
		}
		if status != "" && status != StatusAll && sub.Status != status {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// FilterMessages búsqueda de subcadena sobre nombre, email, empresa y
// cuerpo del mensaje.
func FilterMessages(msgs []entity.ContactMessage, query string) []entity.ContactMessage {
	out := make([]entity.ContactMessage, 0, len(msgs))
	for _, msg := range msgs {
		if matchesQuery(query, msg.Name, msg.Email, msg.Company, msg.Message) {
			out = append(out, msg)
		}
	}
	return out
}

// UserGroup suscripciones de una misma cuenta, para la vista consolidada
// por usuario del back-office.
type UserGroup struct {
	UserID        string
	UserName      string
	UserEmail     string
	Subscriptions []entity.Subscription
}

// GroupByUser agrupa por user_id. Los grupos quedan en orden de primera
// aparición y, dentro de cada grupo, las suscripciones en orden de llegada.
func GroupByUser(subs []entity.Subscription) []UserGroup {
	index := map[string]int{}
	groups := make([]UserGroup, 0)
	for _, sub := range subs {
		i, ok := index[sub.UserID]
		if !ok {
			i = len(groups)
			index[sub.UserID] = i
			groups = append(groups, UserGroup{
				UserID:    sub.UserID,
				UserName:  sub.UserName,
				UserEmail: sub.UserEmail,
			})
		}
		groups[i].Subscriptions = append(groups[i].Subscriptions, sub)
	}
	return groups
}

func matchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
