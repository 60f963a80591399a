package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrLoginRequired   = errors.New("debes iniciar sesión")
	ErrAdminRequired   = errors.New("se requiere rol de administrador")
)

// APIError es un rechazo del backend: conserva el código HTTP y el mensaje
// del campo detail para mostrarlo tal cual al usuario cuando existe.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el servidor respondió con código %d", e.StatusCode)
}

// UserMessage devuelve el mensaje del backend si el error lo trae; en caso
// contrario el texto de reserva indicado (fallos de red incluidos).
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsUnauthorized informa si el error corresponde a un 401 del backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
