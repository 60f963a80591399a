// Package contact implementa el formulario público de contacto.
package contact

import (
	"context"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
	"github.com/ErnestEguez/websitebillennium/internal/domain/gateway"
	"github.com/ErnestEguez/websitebillennium/internal/validation"
)

// UseCase envío de mensajes de contacto. No requiere sesión.
type UseCase struct {
	gw gateway.ContactGateway
}

// NewUseCase construye el caso de uso de contacto.
func NewUseCase(gw gateway.ContactGateway) *UseCase {
	return &UseCase{gw: gw}
}

// Submit valida el formulario (nombre, email y mensaje obligatorios) y solo
// entonces lo envía. Con un formulario incompleto no se emite ningún POST.
func (uc *UseCase) Submit(ctx context.Context, in dto.ContactRequest) (*entity.ContactMessage, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	return uc.gw.SubmitMessage(ctx, gateway.MessageInput{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Company:         in.Company,
		Message:         in.Message,
		ProductInterest: in.ProductInterest,
	})
}
