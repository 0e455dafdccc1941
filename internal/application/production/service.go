package production

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// Service construye una Machine por petición sobre el único slot de sesión.
// Do serializa las peticiones de este proceso.
type Service struct {
	ledger   repository.ProductionRepository
	sessions repository.SessionRepository
	products repository.ProductRepository
	clock    ports.Clock
	log      zerolog.Logger

	mu sync.Mutex
}

func NewService(
	ledger repository.ProductionRepository,
	sessions repository.SessionRepository,
	products repository.ProductRepository,
	clock ports.Clock,
	log zerolog.Logger,
) *Service {
	return &Service{ledger: ledger, sessions: sessions, products: products, clock: clock, log: log}
}

// Do restaura la máquina del operador y ejecuta fn con ella.
func (s *Service) Do(ctx context.Context, user entity.Employee, fn func(m *Machine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := NewMachine(s.ledger, s.sessions, s.clock, s.log)
	if err := m.Restore(ctx, user); err != nil {
		return err
	}
	return fn(m)
}

// FindProduct busca una pieza por código.
func (s *Service) FindProduct(ctx context.Context, code string) (entity.Product, error) {
	all, err := s.products.GetAll(ctx)
	if err != nil {
		return entity.Product{}, err
	}
	for _, p := range all {
		if p.Code == code {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// Ledger devuelve todas las entradas.
func (s *Service) Ledger(ctx context.Context) ([]entity.ProductionEntry, error) {
	return s.ledger.GetAll(ctx)
}
