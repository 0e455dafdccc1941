package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// SectorRepository define el puerto de persistencia para Sector.
// Update reemplaza por id; un id desconocido no hace nada.
type SectorRepository interface {
	GetAll(ctx context.Context) ([]entity.Sector, error)
	Add(ctx context.Context, s entity.Sector) error
	Update(ctx context.Context, s entity.Sector) error
	Remove(ctx context.Context, id int64) error
}
