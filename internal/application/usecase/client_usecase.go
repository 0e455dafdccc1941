package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// ClientUseCase altas y bajas de clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	clock ports.Clock
}

func NewClientUseCase(repo repository.ClientRepository, clock ports.Clock) *ClientUseCase {
	return &ClientUseCase{repo: repo, clock: clockOrSystem(clock)}
}

func (uc *ClientUseCase) List(ctx context.Context) ([]entity.Client, error) {
	return uc.repo.GetAll(ctx)
}

// Create exige todos los campos y un documento completo (CPF de 14 o CNPJ de 18
// caracteres con máscara). Duplicado si coincide documento o nombre.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*entity.Client, error) {
	c := entity.Client{
		Name:    strings.TrimSpace(in.Name),
		Doc:     FormatDocument(in.Doc),
		Contact: FormatPhone(in.Contact),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if c.Name == "" || c.Doc == "" || c.Contact == "" || c.Email == "" || c.Address == "" {
		return nil, fmt.Errorf("%w: todos los campos son obligatorios", domain.ErrInvalidInput)
	}
	if len(c.Doc) != 14 && len(c.Doc) != 18 {
		return nil, fmt.Errorf("%w: documento incompleto", domain.ErrInvalidInput)
	}

	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, x := range all {
		if x.Doc == c.Doc || strings.EqualFold(x.Name, c.Name) {
			return nil, fmt.Errorf("%w: documento o nombre ya registrado", domain.ErrDuplicate)
		}
	}

	c.ID = nextID(uc.clock, func(id int64) bool {
		for _, x := range all {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	if err := uc.repo.Add(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *ClientUseCase) Remove(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}
