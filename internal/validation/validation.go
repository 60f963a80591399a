// Package validation valida los formularios del portal antes de cualquier
// llamada de red, con mensajes en español listos para mostrar al usuario.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Reportar los nombres de campo como aparecen en el JSON del backend
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Error agrupa los mensajes de validación de un formulario.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ValidateStruct valida los tags `validate` de un struct. Devuelve nil si
// todo es válido; si no, un *Error con un mensaje por campo fallido.
func ValidateStruct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Messages: []string{"error de validación: " + err.Error()}}
	}
	out := &Error{Messages: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		out.Messages = append(out.Messages, messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", field)
	case "email":
		return fmt.Sprintf("el campo %s debe ser un correo electrónico válido", field)
	case "min":
		return fmt.Sprintf("el campo %s debe tener al menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s no puede superar %s caracteres", field, fe.Param())
	case "eqfield":
		return "las contraseñas no coinciden"
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("valor inválido para el campo %s", field)
	}
}
