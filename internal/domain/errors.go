package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUsernameTaken    = errors.New("el nombre de usuario ya está registrado")
	ErrLastColumn       = errors.New("no se puede eliminar la última columna del tablero")
	ErrTemplateInactive = errors.New("la plantilla está desactivada")
)

// Errores de validación del formulario de pedido. Se emiten ANTES de cualquier
// escritura en la base de datos y el handler los traduce a 400 con mensaje propio.
var (
	ErrCustomerNameRequired  = errors.New("el nombre del cliente es obligatorio")
	ErrCustomerPhoneRequired = errors.New("el teléfono del cliente es obligatorio")
	ErrNoOrderItems          = errors.New("debe añadir al menos un producto con descripción")
)
