package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidInput indica mal uso por parte del caller: entrada en blanco,
	// nula o con forma inválida. Nunca se reintenta; es un bug del caller.
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrInvalidEnrichment indica un token de enrichment no soportado.
	// La operación completa falla; nunca se devuelve un enrichment parcial.
	ErrInvalidEnrichment = errors.New("enrichment no soportado")

	// ErrDuplicate indica una violación de constraint único reportada por el
	// almacén (login o email duplicado). Condición de negocio esperada,
	// distinguible de un fallo genérico de base de datos.
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrConnection indica que el backend no es alcanzable o rechazó las
	// credenciales al adquirir la conexión.
	ErrConnection = errors.New("conexión a base de datos no disponible")

	// ErrBackendType indica un tipo de backend configurado no soportado.
	// Es fatal en el arranque; no se reintenta.
	ErrBackendType = errors.New("tipo de backend no soportado")

	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
