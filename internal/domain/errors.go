package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrCostLineNotFound = errors.New("línea de costo no encontrada")
	ErrUnknownCostList  = errors.New("lista de costos desconocida")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrRateLimited      = errors.New("demasiadas solicitudes")
)
