package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInviteInvalid      = errors.New("código de invitación inválido o ya usado")
	ErrPayloadTooLarge    = errors.New("el archivo supera el tamaño máximo permitido")
	ErrUnsupportedMedia   = errors.New("formato de archivo no soportado")
)
