package repository

import "context"

// KVStore almacén clave-valor de documentos completos (una colección por clave).
type KVStore interface {
	// Get devuelve nil, nil cuando la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMany lee todas las claves en una sola foto consistente; las ausentes no aparecen.
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)
	// SetMany escribe todas las claves o ninguna.
	SetMany(ctx context.Context, values map[string][]byte) error
}

// Locker delimita la sección de escritor único alrededor de cada ciclo leer-modificar-escribir.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), err error)
}
