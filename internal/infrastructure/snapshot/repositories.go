package snapshot

import (
	"context"

	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// EmployeeRepo implementa repository.EmployeeRepository sobre el Store.
type EmployeeRepo struct {
	store *Store
}

// NewEmployeeRepository crea el repositorio de empleados.
func NewEmployeeRepository(store *Store) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// GetAll devuelve una copia de la colección en memoria (sin recargar).
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]entity.Employee, error) {
	var out []entity.Employee
	r.store.View(func(m entity.Snapshot) { out = append([]entity.Employee{}, m.Employees...) })
	return out, ctx.Err()
}

func (r *EmployeeRepo) Add(ctx context.Context, e entity.Employee) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Employees = append(m.Employees, e)
		return true
	})
}

func (r *EmployeeRepo) Remove(ctx context.Context, id int64) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Employees = without(m.Employees, func(e entity.Employee) bool { return e.ID == id })
		return true
	})
}

// ClientRepo implementa repository.ClientRepository.
type ClientRepo struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepo {
	return &ClientRepo{store: store}
}

var _ repository.ClientRepository = (*ClientRepo)(nil)

func (r *ClientRepo) GetAll(ctx context.Context) ([]entity.Client, error) {
	var out []entity.Client
	r.store.View(func(m entity.Snapshot) { out = append([]entity.Client{}, m.Clients...) })
	return out, ctx.Err()
}

func (r *ClientRepo) Add(ctx context.Context, c entity.Client) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Clients = append(m.Clients, c)
		return true
	})
}

func (r *ClientRepo) Remove(ctx context.Context, id int64) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Clients = without(m.Clients, func(c entity.Client) bool { return c.ID == id })
		return true
	})
}

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) GetAll(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	r.store.View(func(m entity.Snapshot) { out = append([]entity.Product{}, m.Products...) })
	return out, ctx.Err()
}

func (r *ProductRepo) Add(ctx context.Context, p entity.Product) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Products = append(m.Products, p)
		return true
	})
}

func (r *ProductRepo) Remove(ctx context.Context, id int64) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Products = without(m.Products, func(p entity.Product) bool { return p.ID == id })
		return true
	})
}

// SectorRepo implementa repository.SectorRepository.
type SectorRepo struct {
	store *Store
}

func NewSectorRepository(store *Store) *SectorRepo {
	return &SectorRepo{store: store}
}

var _ repository.SectorRepository = (*SectorRepo)(nil)

func (r *SectorRepo) GetAll(ctx context.Context) ([]entity.Sector, error) {
	var out []entity.Sector
	r.store.View(func(m entity.Snapshot) { out = append([]entity.Sector{}, m.Sectors...) })
	return out, ctx.Err()
}

func (r *SectorRepo) Add(ctx context.Context, s entity.Sector) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Sectors = append(m.Sectors, s)
		return true
	})
}

// Update reemplaza el sector con el mismo id. Los productos y entradas que lo
// referencian por nombre no se actualizan.
func (r *SectorRepo) Update(ctx context.Context, s entity.Sector) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		for i := range m.Sectors {
			if m.Sectors[i].ID == s.ID {
				m.Sectors[i] = s
			}
		}
		return true
	})
}

func (r *SectorRepo) Remove(ctx context.Context, id int64) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Sectors = without(m.Sectors, func(s entity.Sector) bool { return s.ID == id })
		return true
	})
}

// ProductionRepo implementa repository.ProductionRepository (ledger).
type ProductionRepo struct {
	store *Store
}

func NewProductionRepository(store *Store) *ProductionRepo {
	return &ProductionRepo{store: store}
}

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

func (r *ProductionRepo) GetAll(ctx context.Context) ([]entity.ProductionEntry, error) {
	var out []entity.ProductionEntry
	r.store.View(func(m entity.Snapshot) { out = append([]entity.ProductionEntry{}, m.Production...) })
	return out, ctx.Err()
}

func (r *ProductionRepo) Start(ctx context.Context, entry entity.ProductionEntry) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		m.Production = append(m.Production, entry)
		return true
	})
}

// UpdateSector mueve la entrada working más reciente del id; si no hay ninguna
// working, la primera coincidencia.
func (r *ProductionRepo) UpdateSector(ctx context.Context, id, sector string) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		target := -1
		for i := len(m.Production) - 1; i >= 0; i-- {
			if m.Production[i].Matches(id) && m.Production[i].Status == entity.StatusWorking {
				target = i
				break
			}
		}
		if target < 0 {
			for i := range m.Production {
				if m.Production[i].Matches(id) {
					target = i
					break
				}
			}
		}
		if target < 0 {
			return false
		}
		m.Production[target].CurrentSector = sector
		return true
	})
}

func (r *ProductionRepo) Finish(ctx context.Context, id string) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		for i := len(m.Production) - 1; i >= 0; i-- {
			p := &m.Production[i]
			if p.Matches(id) && p.Status == entity.StatusWorking {
				p.Status = entity.StatusFinished
				return true
			}
		}
		return false
	})
}

// without devuelve una copia de items sin los elementos que cumplen drop. Nunca devuelve nil.
func without[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out
}

// CurrentUserRepo implementa repository.CurrentUserRepository.
type CurrentUserRepo struct {
	store *Store
}

func NewCurrentUserRepository(store *Store) *CurrentUserRepo {
	return &CurrentUserRepo{store: store}
}

var _ repository.CurrentUserRepository = (*CurrentUserRepo)(nil)

func (r *CurrentUserRepo) Reload(ctx context.Context) { r.store.Load(ctx) }

// Current devuelve una copia del puntero tal cual (nil si nadie inició sesión).
func (r *CurrentUserRepo) Current() *entity.Employee {
	var out *entity.Employee
	r.store.View(func(m entity.Snapshot) {
		if m.CurrentUser != nil {
			u := *m.CurrentUser
			out = &u
		}
	})
	return out
}

func (r *CurrentUserRepo) SetCurrent(ctx context.Context, e *entity.Employee) error {
	return r.store.Mutate(ctx, func(m *entity.Snapshot) bool {
		if e == nil {
			m.CurrentUser = nil
			return true
		}
		u := *e
		m.CurrentUser = &u
		return true
	})
}
