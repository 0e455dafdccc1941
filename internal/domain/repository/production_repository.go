package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// ProductionRepository es el ledger de producción (solo se agrega, nunca se borra).
type ProductionRepository interface {
	GetAll(ctx context.Context) ([]entity.ProductionEntry, error)
	// Start agrega una entrada nueva.
	Start(ctx context.Context, entry entity.ProductionEntry) error
	// UpdateSector cambia el sector de la entrada working más reciente cuyo id o código
	// coincide (o de la primera coincidencia si ninguna está working).
	UpdateSector(ctx context.Context, id, sector string) error
	// Finish marca como finished la entrada working más reciente cuyo id o código coincide.
	Finish(ctx context.Context, id string) error
}
