package repository

import "context"

// KeyValueStore puerto de persistencia de registros JSON por clave (DIP).
// Cada clave es independiente: no hay transacciones entre claves.
type KeyValueStore interface {
	// Get devuelve found=false (sin error) si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
