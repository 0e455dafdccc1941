package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	GetAll(ctx context.Context) ([]entity.Client, error)
	Add(ctx context.Context, c entity.Client) error
	Remove(ctx context.Context, id int64) error
}
