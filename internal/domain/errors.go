package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrAlreadyExists    = errors.New("el recurso ya existe")
	ErrInvalidID        = errors.New("identificador inválido")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrOrderAlreadyPaid = errors.New("la orden ya fue pagada")
	ErrPaymentFailed    = errors.New("fallo en el proveedor de pagos")
)
