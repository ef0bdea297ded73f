package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Autenticación y autorización se mantienen separadas: credenciales malas
// nunca revelan si el email existe; las negaciones de autorización sí son
// específicas para que el transporte responda 403 con el motivo correcto.
var (
	// Autenticación
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("token ausente, inválido o expirado")

	// Autorización
	ErrNotOwner        = errors.New("el recurso pertenece a otro mayorista")
	ErrInactiveAccount = errors.New("la cuenta está inactiva")
	ErrNotSubscribed   = errors.New("no existe suscripción aprobada con este mayorista")

	// Validación / conflicto
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrMissingRole            = errors.New("el rol es requerido")
	ErrDuplicateSKU           = errors.New("el código SKU ya existe")
	ErrConcurrentModification = errors.New("el producto fue modificado por otra operación")
	ErrInvalidSortField       = errors.New("campo de ordenamiento no permitido")
	ErrInvalidInput           = errors.New("entrada inválida")

	// Infraestructura
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
)
