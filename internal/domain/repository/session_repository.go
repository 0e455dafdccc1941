package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// SessionRepository guarda el único slot de ProductionSession (último en escribir gana).
// Get devuelve nil si no hay sesión guardada.
type SessionRepository interface {
	Get(ctx context.Context) (*entity.ProductionSession, error)
	Save(ctx context.Context, s entity.ProductionSession) error
	Clear(ctx context.Context) error
}
