package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// Reloader refresca la copia en memoria desde el almacenamiento. Opcional.
type Reloader interface {
	Reload(ctx context.Context)
}

// DashboardUseCase genera las vistas del panel a partir de las colecciones.
//
// Solo lectura: nunca escribe en el almacenamiento.
type DashboardUseCase struct {
	employees  repository.EmployeeRepository
	products   repository.ProductRepository
	ledger     repository.ProductionRepository
	clients    repository.ClientRepository
	reloader   Reloader
	clock      ports.Clock
	capacities map[string]int
}

// NewDashboardUseCase construye el caso de uso. capacities se mezcla sobre DefaultCapacities.
func NewDashboardUseCase(
	employees repository.EmployeeRepository,
	products repository.ProductRepository,
	ledger repository.ProductionRepository,
	clients repository.ClientRepository,
	clock ports.Clock,
	capacities map[string]int,
) *DashboardUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	caps := DefaultCapacities()
	for k, v := range capacities {
		caps[k] = v
	}
	return &DashboardUseCase{
		employees:  employees,
		products:   products,
		ledger:     ledger,
		clients:    clients,
		clock:      clock,
		capacities: caps,
	}
}

// WithReloader hace que cada vista recargue antes de leer (lo usa la API, donde
// otros procesos pueden haber escrito).
func (uc *DashboardUseCase) WithReloader(r Reloader) *DashboardUseCase {
	uc.reloader = r
	return uc
}

// snapshotData colecciones leídas para una vista.
type snapshotData struct {
	employees []entity.Employee
	products  []entity.Product
	ledger    []entity.ProductionEntry
	clients   []entity.Client
}

// fetch lee las cuatro colecciones en paralelo.
func (uc *DashboardUseCase) fetch(ctx context.Context) (*snapshotData, error) {
	if uc.reloader != nil {
		uc.reloader.Reload(ctx)
	}

	type empResult struct {
		items []entity.Employee
		err   error
	}
	type prodResult struct {
		items []entity.Product
		err   error
	}
	type ledgerResult struct {
		items []entity.ProductionEntry
		err   error
	}
	type clientResult struct {
		items []entity.Client
		err   error
	}

	empCh := make(chan empResult, 1)
	prodCh := make(chan prodResult, 1)
	ledgerCh := make(chan ledgerResult, 1)
	clientCh := make(chan clientResult, 1)

	go func() {
		items, err := uc.employees.GetAll(ctx)
		empCh <- empResult{items, err}
	}()
	go func() {
		items, err := uc.products.GetAll(ctx)
		prodCh <- prodResult{items, err}
	}()
	go func() {
		items, err := uc.ledger.GetAll(ctx)
		ledgerCh <- ledgerResult{items, err}
	}()
	go func() {
		items, err := uc.clients.GetAll(ctx)
		clientCh <- clientResult{items, err}
	}()

	emp, prod, led, cli := <-empCh, <-prodCh, <-ledgerCh, <-clientCh
	if emp.err != nil {
		return nil, fmt.Errorf("dashboard: empleados: %w", emp.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prod.err)
	}
	if led.err != nil {
		return nil, fmt.Errorf("dashboard: ledger: %w", led.err)
	}
	if cli.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", cli.err)
	}
	return &snapshotData{employees: emp.items, products: prod.items, ledger: led.items, clients: cli.items}, nil
}

// DailyCount producción de hoy del empleado (base + finalizadas hoy).
func (uc *DashboardUseCase) DailyCount(ctx context.Context, employeeName string) (int, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return 0, err
	}
	return dailyCount(d.employees, d.ledger, employeeName, uc.clock.Now()), nil
}

// MonthlyCount producción del mes del empleado (base × día + finalizadas del mes).
func (uc *DashboardUseCase) MonthlyCount(ctx context.Context, employeeName string) (int, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return 0, err
	}
	return monthlyCount(d.employees, d.ledger, employeeName, uc.clock.Now()), nil
}

// SectorOccupancy ocupación de los sectores del panel, en orden fijo.
func (uc *DashboardUseCase) SectorOccupancy(ctx context.Context) ([]dto.SectorOccupancyDTO, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return sectorOccupancy(d.products, d.ledger, uc.capacities), nil
}

// Summary arma el resumen del panel: total de hoy, producción en vivo, ocupación y WIP.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	today := 0
	for _, e := range d.employees {
		today += dailyCount(d.employees, d.ledger, e.Name, now)
	}

	live := make([]dto.LiveProductionDTO, 0)
	for _, p := range d.ledger {
		if p.Status != entity.StatusWorking && p.Status != entity.StatusPaused {
			continue
		}
		elapsed := (now.UnixMilli() - p.StartTime) / 1000
		if elapsed < 0 {
			elapsed = 0
		}
		live = append(live, dto.LiveProductionDTO{
			ID:             p.ID,
			EmployeeName:   p.EmployeeName,
			Avatar:         p.Avatar,
			PartName:       p.PartName,
			PartCode:       p.PartCode,
			CurrentSector:  p.CurrentSector,
			Status:         p.Status,
			DailyCount:     dailyCount(d.employees, d.ledger, p.EmployeeName, now),
			ElapsedSeconds: elapsed,
		})
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].ElapsedSeconds < live[j].ElapsedSeconds })

	sectors := sectorOccupancy(d.products, d.ledger, uc.capacities)
	wip := 0
	for _, s := range sectors {
		wip += s.Count
	}

	return &dto.DashboardSummaryDTO{
		TodayTotal:  today,
		Live:        live,
		Sectors:     sectors,
		TotalWIP:    wip,
		GeneratedAt: now,
	}, nil
}

// MonthlyReport producción mensual por empleado, de mayor a menor.
func (uc *DashboardUseCase) MonthlyReport(ctx context.Context) (*dto.MonthlyReportDTO, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	rows := make([]dto.MonthlyReportRow, 0, len(d.employees))
	for _, e := range d.employees {
		rows = append(rows, dto.MonthlyReportRow{
			Name:   e.Name,
			Sector: e.Sector,
			Avatar: e.Avatar,
			Count:  monthlyCount(d.employees, d.ledger, e.Name, now),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })

	return &dto.MonthlyReportDTO{MonthLabel: monthLabel(now), Rows: rows, GeneratedAt: now}, nil
}

// Details separa el ledger en pendientes y finalizadas y agrega empleados y clientes.
func (uc *DashboardUseCase) Details(ctx context.Context) (*dto.DetailsDTO, error) {
	d, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	out := &dto.DetailsDTO{
		Pending:   make([]entity.ProductionEntry, 0),
		Finished:  make([]entity.ProductionEntry, 0),
		Employees: make([]dto.EmployeeDailyDTO, 0, len(d.employees)),
		Clients:   d.clients,
	}
	for _, p := range d.ledger {
		if p.Status == entity.StatusFinished {
			out.Finished = append(out.Finished, p)
		} else {
			out.Pending = append(out.Pending, p)
		}
	}
	for _, e := range d.employees {
		out.Employees = append(out.Employees, dto.EmployeeDailyDTO{
			ID:         e.ID,
			Name:       e.Name,
			Sector:     e.Sector,
			Avatar:     e.Avatar,
			Status:     e.Status,
			DailyCount: dailyCount(d.employees, d.ledger, e.Name, now),
		})
	}
	if out.Clients == nil {
		out.Clients = make([]entity.Client, 0)
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Outubro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
