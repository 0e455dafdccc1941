package snapshot

import (
	"context"
	"errors"
)

// Claves usadas sobre el backend.
const (
	KeySnapshot = "snapshot"
	KeySession  = "session"
)

// ErrNotFound indica que la clave nunca fue escrita (o fue borrada).
var ErrNotFound = errors.New("snapshot: clave no encontrada")

// Backend es el medio durable compartido. Cada clave guarda un blob completo;
// no hay escrituras parciales ni bloqueo entre escritores.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
