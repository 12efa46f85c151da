package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores de la importación de clientes (fallas a nivel de lote).
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrNoCustomerData    = errors.New("no se encontraron datos de clientes en el archivo")
)
