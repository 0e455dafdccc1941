package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// CurrentUserRepository guarda el puntero al empleado autenticado junto al snapshot,
// para que sobreviva a un reinicio. nil = sesión cerrada.
type CurrentUserRepository interface {
	// Reload fuerza la relectura del almacenamiento durable.
	Reload(ctx context.Context)
	Current() *entity.Employee
	SetCurrent(ctx context.Context, e *entity.Employee) error
}
