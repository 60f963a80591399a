package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func sampleSubs() []entity.Subscription {
	return []entity.Subscription{
		{ID: "s-1", UserID: "u-1", UserName: "Carla Mendoza", UserEmail: "carla@acme.ec", ProductName: "RestoFlow", CompanyName: "Acme", Status: entity.SubscriptionActive},
		{ID: "s-2", UserID: "u-2", UserName: "Diego Paz", UserEmail: "diego@norte.ec", ProductName: "Sentinel", CompanyName: "Norte SA", Status: entity.SubscriptionPending},
		{ID: "s-3", UserID: "u-1", UserName: "Carla Mendoza", UserEmail: "carla@acme.ec", ProductName: "Facturación", CompanyName: "Acme", Status: entity.SubscriptionSuspended},
		{ID: "s-4", UserID: "u-3", UserName: "Lucía Vera", UserEmail: "lucia@sur.ec", ProductName: "RestoFlow", CompanyName: "Sur Cía", Status: entity.SubscriptionActive},
	}
}

func ids(subs []entity.Subscription) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.ID
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// Sin criterios la lista pasa completa y en el mismo orden.
func TestFilterSubscriptions_SinCriterios(t *testing.T) {
	got := FilterSubscriptions(sampleSubs(), "", StatusAll)
	assert.Equal(t, []string{"s-1", "s-2", "s-3", "s-4"}, ids(got))
}

// La búsqueda es por subcadena, insensible a mayúsculas, sobre usuario,
// email, producto y empresa.
func TestFilterSubscriptions_BusquedaInsensible(t *testing.T) {
	assert.Equal(t, []string{"s-1", "s-3"}, ids(FilterSubscriptions(sampleSubs(), "CARLA", StatusAll)))
	assert.Equal(t, []string{"s-1", "s-4"}, ids(FilterSubscriptions(sampleSubs(), "restoflow", StatusAll)))
	assert.Equal(t, []string{"s-2"}, ids(FilterSubscriptions(sampleSubs(), "norte.ec", StatusAll)))
	assert.Equal(t, []string{"s-4"}, ids(FilterSubscriptions(sampleSubs(), "sur cía", StatusAll)))
}

func TestFilterSubscriptions_EstadoExacto(t *testing.T) {
	got := FilterSubscriptions(sampleSubs(), "", entity.SubscriptionActive)
	assert.Equal(t, []string{"s-1", "s-4"}, ids(got))

	// "active" no matchea "inactive" ni prefijos: el filtro de estado es exacto.
	assert.Empty(t, FilterSubscriptions(sampleSubs(), "", "activ"))
}

// Búsqueda y estado son conjuntivos: ambos deben cumplirse.
func TestFilterSubscriptions_CriteriosConjuntivos(t *testing.T) {
	got := FilterSubscriptions(sampleSubs(), "carla", entity.SubscriptionActive)
	assert.Equal(t, []string{"s-1"}, ids(got), "solo la suscripción activa de Carla debe pasar ambos filtros")
}

func TestFilterSubscriptions_SinResultados(t *testing.T) {
	got := FilterSubscriptions(sampleSubs(), "inexistente", StatusAll)
	assert.Empty(t, got)
	assert.NotNil(t, got, "sin resultados se devuelve lista vacía, no nil")
}

func TestFilterMessages_BuscaEnCuerpo(t *testing.T) {
	msgs := []entity.ContactMessage{
		{ID: "m-1", Name: "Pedro", Email: "pedro@x.ec", Message: "Quiero una demo de RestoFlow"},
		{ID: "m-2", Name: "Ana", Email: "ana@y.ec", Company: "Andes", Message: "Consulta de precios"},
	}

	got := FilterMessages(msgs, "demo")
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].ID)

	got = FilterMessages(msgs, "andes")
	require.Len(t, got, 1)
	assert.Equal(t, "m-2", got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación por usuario
// ──────────────────────────────────────────────────────────────────────────────

// Los grupos quedan en orden de primera aparición y dentro de cada grupo las
// suscripciones conservan el orden de llegada.
func TestGroupByUser_OrdenDePrimeraAparicion(t *testing.T) {
	groups := GroupByUser(sampleSubs())
	require.Len(t, groups, 3)

	assert.Equal(t, "u-1", groups[0].UserID)
	assert.Equal(t, "Carla Mendoza", groups[0].UserName)
	assert.Equal(t, []string{"s-1", "s-3"}, ids(groups[0].Subscriptions))

	assert.Equal(t, "u-2", groups[1].UserID)
	assert.Equal(t, "u-3", groups[2].UserID)
}

func TestGroupByUser_ListaVacia(t *testing.T) {
	assert.Empty(t, GroupByUser(nil))
}
