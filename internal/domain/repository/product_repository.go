package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	Add(ctx context.Context, p entity.Product) error
	Remove(ctx context.Context, id int64) error
}
