package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// RegisterSector sector asignado en el auto-registro público.
const RegisterSector = "Triagem"

const cpfMaskedLen = 14

// EmployeeUseCase valida altas de empleados antes de llegar al repositorio.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	clock ports.Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, clock ports.Clock) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, clock: clockOrSystem(clock)}
}

// List devuelve todos los empleados sin password.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(all))
	for _, e := range all {
		out = append(out, auth.ToEmployeeResponse(e))
	}
	return out, nil
}

// Create alta desde administración: todos los campos son obligatorios.
// Duplicado si coincide CPF, nombre o usuario (estos dos sin distinguir mayúsculas).
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	cpf := FormatCPF(in.CPF)

	if name == "" || in.Sector == "" || cpf == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: todos los campos son obligatorios", domain.ErrInvalidInput)
	}
	if password != strings.TrimSpace(in.ConfirmPassword) {
		return nil, fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	if len(cpf) != cpfMaskedLen {
		return nil, fmt.Errorf("%w: CPF incompleto", domain.ErrInvalidInput)
	}

	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.CPF == cpf || strings.EqualFold(e.Name, name) || (e.Username != "" && strings.EqualFold(strings.TrimSpace(e.Username), username)) {
			return nil, fmt.Errorf("%w: CPF, nombre o usuario ya registrado", domain.ErrDuplicate)
		}
	}

	return uc.add(ctx, all, entity.Employee{
		Name:                name,
		Sector:              in.Sector,
		Avatar:              in.Avatar,
		CPF:                 cpf,
		DailyProductionBase: in.DailyProductionBase,
		Username:            username,
	}, password)
}

// Register auto-registro público: sector Triagem, base 0. Duplicado si coincide usuario o CPF.
func (uc *EmployeeUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	cpf := FormatCPF(in.CPF)

	if name == "" || username == "" || password == "" || cpf == "" {
		return nil, fmt.Errorf("%w: complete los campos obligatorios", domain.ErrInvalidInput)
	}
	if password != strings.TrimSpace(in.ConfirmPassword) {
		return nil, fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	if len(cpf) != cpfMaskedLen {
		return nil, fmt.Errorf("%w: CPF incompleto", domain.ErrInvalidInput)
	}

	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.CPF == cpf || (e.Username != "" && strings.EqualFold(strings.TrimSpace(e.Username), username)) {
			return nil, fmt.Errorf("%w: usuario o CPF ya registrado", domain.ErrDuplicate)
		}
	}

	return uc.add(ctx, all, entity.Employee{
		Name:     name,
		Sector:   RegisterSector,
		Avatar:   in.Avatar,
		CPF:      cpf,
		Username: username,
	}, password)
}

// Remove baja por id; un id inexistente no es error.
func (uc *EmployeeUseCase) Remove(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}

func (uc *EmployeeUseCase) add(ctx context.Context, existing []entity.Employee, e entity.Employee, password string) (*dto.EmployeeResponse, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash de password: %w", err)
	}
	e.ID = nextID(uc.clock, func(id int64) bool {
		for _, x := range existing {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	e.Status = entity.EmployeeOffline
	e.Password = hash
	if err := uc.repo.Add(ctx, e); err != nil {
		return nil, err
	}
	resp := auth.ToEmployeeResponse(e)
	return &resp, nil
}
