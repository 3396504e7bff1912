package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrLoginRequired   = errors.New("sesión requerida")
	ErrForbidden       = errors.New("acceso denegado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrInvalidResponse = errors.New("respuesta inválida del servidor")
	ErrInvalidInput    = errors.New("entrada inválida")
)
