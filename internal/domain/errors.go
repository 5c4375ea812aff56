package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrDuplicateUser   = errors.New("el username o email ya está registrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrSelfAction      = errors.New("un admin no puede aplicarse esta acción a sí mismo")
	ErrInvalidRole     = errors.New("rol inválido")
	ErrInvalidSupplier = errors.New("el supplier no existe o está inactivo")
	ErrDeliveryLocked  = errors.New("la entrega solo puede modificarse dentro de los 10 minutos posteriores a su registro")
	ErrAlreadyAccepted = errors.New("la entrega ya fue aceptada")
)
