package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrShellNotMounted = errors.New("el layout de administración no está montado")
	ErrCatalogUnknown  = errors.New("versión de catálogo desconocida")
)
