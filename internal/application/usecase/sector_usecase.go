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

// SectorUseCase altas, ediciones y bajas de sectores.
type SectorUseCase struct {
	repo  repository.SectorRepository
	clock ports.Clock
}

func NewSectorUseCase(repo repository.SectorRepository, clock ports.Clock) *SectorUseCase {
	return &SectorUseCase{repo: repo, clock: clockOrSystem(clock)}
}

func (uc *SectorUseCase) List(ctx context.Context) ([]entity.Sector, error) {
	return uc.repo.GetAll(ctx)
}

// Create exige nombre y responsable; el nombre no puede repetirse.
func (uc *SectorUseCase) Create(ctx context.Context, in dto.SectorRequest) (*entity.Sector, error) {
	s, err := validSector(in)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, x := range all {
		if strings.EqualFold(x.Name, s.Name) {
			return nil, fmt.Errorf("%w: ya existe un sector con ese nombre", domain.ErrDuplicate)
		}
	}
	s.ID = nextID(uc.clock, func(id int64) bool {
		for _, x := range all {
			if x.ID == id {
				return true
			}
		}
		return false
	})
	if err := uc.repo.Add(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update renombra o edita. No revisa duplicados y no propaga el nombre nuevo
// a productos ni al ledger.
func (uc *SectorUseCase) Update(ctx context.Context, id int64, in dto.SectorRequest) (*entity.Sector, error) {
	s, err := validSector(in)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, x := range all {
		if x.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	s.ID = id
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *SectorUseCase) Remove(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}

func validSector(in dto.SectorRequest) (entity.Sector, error) {
	s := entity.Sector{
		Name:        strings.TrimSpace(in.Name),
		Manager:     strings.TrimSpace(in.Manager),
		Description: strings.TrimSpace(in.Description),
	}
	if s.Name == "" || s.Manager == "" {
		return s, fmt.Errorf("%w: nombre y responsable son obligatorios", domain.ErrInvalidInput)
	}
	return s, nil
}
