package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
)

type fakeContactGateway struct {
	calls     int
	lastInput gateway.MessageInput
	created   *entity.ContactMessage
	err       error
}

func (f *fakeContactGateway) SubmitMessage(ctx context.Context, in gateway.MessageInput) (*entity.ContactMessage, error) {
	f.calls++
	f.lastInput = in
	return f.created, f.err
}

// El formulario de contacto no exige sesión: cualquiera puede escribir.
func TestSubmit_Valido(t *testing.T) {
	gw := &fakeContactGateway{created: &entity.ContactMessage{ID: "m-1"}}
	uc := NewUseCase(gw)

	msg, err := uc.Submit(context.Background(), dto.ContactRequest{
		Name:            "Pedro Salas",
		Email:           "pedro@restaurante.ec",
		Message:         "Quiero una demo de RestoFlow",
		ProductInterest: "restoflow",
	})
	require.NoError(t, err)

	assert.Equal(t, "m-1", msg.ID)
	assert.Equal(t, "restoflow", gw.lastInput.ProductInterest)
}

// Con el mensaje vacío no se emite ningún POST.
func TestSubmit_MensajeVacioNoLlamaAlBackend(t *testing.T) {
	gw := &fakeContactGateway{}
	uc := NewUseCase(gw)

	_, err := uc.Submit(context.Background(), dto.ContactRequest{
		Name:  "Pedro Salas",
		Email: "pedro@restaurante.ec",
	})
	require.Error(t, err)
	assert.Zero(t, gw.calls, "un formulario incompleto no debe viajar")
}

func TestSubmit_EmailInvalido(t *testing.T) {
	gw := &fakeContactGateway{}
	uc := NewUseCase(gw)

	_, err := uc.Submit(context.Background(), dto.ContactRequest{
		Name:    "Pedro",
		Email:   "no-es-email",
		Message: "Hola",
	})
	require.Error(t, err)
	assert.Zero(t, gw.calls)
}
