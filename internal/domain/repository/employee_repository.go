package repository

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// No valida ni impone unicidad: eso es responsabilidad del llamador.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]entity.Employee, error)
	Add(ctx context.Context, e entity.Employee) error
	Remove(ctx context.Context, id int64) error
}
