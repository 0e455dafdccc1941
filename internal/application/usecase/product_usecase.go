package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// firstProductCode primer código cuando no hay ninguno numérico.
const firstProductCode = 1001

// ProductUseCase casos de uso de piezas. El código se asigna en el servidor.
type ProductUseCase struct {
	repo  repository.ProductRepository
	clock ports.Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, clock ports.Clock) *ProductUseCase {
	return &ProductUseCase{repo: repo, clock: clockOrSystem(clock)}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.GetAll(ctx)
}

// NextCode devuelve el mayor código numérico + 1, o 1001 si no hay ninguno.
func (uc *ProductUseCase) NextCode(ctx context.Context) (string, error) {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return nextCode(all), nil
}

// Create exige nombre, cliente y sector inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	p := entity.Product{
		Name:   strings.TrimSpace(in.Name),
		Client: strings.TrimSpace(in.Client),
		Sector: strings.TrimSpace(in.Sector),
	}
	if p.Name == "" || p.Client == "" || p.Sector == "" {
		return nil, fmt.Errorf("%w: nombre, cliente y sector son obligatorios", domain.ErrInvalidInput)
	}

	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	p.Code = nextCode(all)
	p.ID = nextID(uc.clock, func(id int64) bool {
		for _, x := range all {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	if err := uc.repo.Add(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (uc *ProductUseCase) Remove(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}

func nextCode(products []entity.Product) string {
	highest := 0
	for _, p := range products {
		n, err := strconv.Atoi(digitsOnly(p.Code))
		if err == nil && n > highest {
			highest = n
		}
	}
	if highest == 0 {
		return strconv.Itoa(firstProductCode)
	}
	return strconv.Itoa(highest + 1)
}
