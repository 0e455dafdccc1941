package analytics_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/application/analytics"
	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 19/10/2026 15:00 hora local.
var now = time.Date(2026, time.October, 19, 15, 0, 0, 0, brt)

func ms(t time.Time) int64 { return t.UnixMilli() }

type fixture struct {
	store *snapshot.Store
	uc    *analytics.DashboardUseCase
}

func newFixture(t *testing.T, seed func(m *entity.Snapshot), capacities map[string]int) fixture {
	t.Helper()
	store := snapshot.NewStore(snapshot.NewMemoryBackend(), zerolog.Nop(), nil)
	require.NoError(t, store.Mutate(context.Background(), func(m *entity.Snapshot) bool {
		seed(m)
		return true
	}))
	uc := analytics.NewDashboardUseCase(
		snapshot.NewEmployeeRepository(store),
		snapshot.NewProductRepository(store),
		snapshot.NewProductionRepository(store),
		snapshot.NewClientRepository(store),
		fixedClock{now},
		capacities,
	)
	return fixture{store: store, uc: uc}
}

func carlosLedger(m *entity.Snapshot) {
	m.Employees = append(m.Employees,
		entity.Employee{ID: 10, Name: "Carlos", Sector: "Corte", DailyProductionBase: 5},
		entity.Employee{ID: 11, Name: "Beatriz", Sector: "Costura", DailyProductionBase: 2},
	)
	m.Production = append(m.Production,
		entity.ProductionEntry{ID: "1001", EmployeeName: "Carlos", CurrentSector: "Corte", StartTime: ms(now.Add(-5 * time.Hour)), Status: entity.StatusFinished},
		entity.ProductionEntry{ID: "1002", EmployeeName: "Carlos", CurrentSector: "Corte", StartTime: ms(now.Add(-1 * time.Hour)), Status: entity.StatusFinished},
		// ayer: cuenta en el mes, no en el día
		entity.ProductionEntry{ID: "1003", EmployeeName: "Carlos", CurrentSector: "Corte", StartTime: ms(now.Add(-24 * time.Hour)), Status: entity.StatusFinished},
		// en curso: no cuenta
		entity.ProductionEntry{ID: "1004", EmployeeName: "Carlos", CurrentSector: "Corte", StartTime: ms(now.Add(-10 * time.Minute)), Status: entity.StatusWorking},
		entity.ProductionEntry{ID: "1005", EmployeeName: "Beatriz", CurrentSector: "Costura", StartTime: ms(now.Add(-2 * time.Minute)), Status: entity.StatusPaused},
	)
}

func TestDailyCount_BasePlusFinishedToday(t *testing.T) {
	f := newFixture(t, carlosLedger, nil)

	got, err := f.uc.DailyCount(context.Background(), "Carlos")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = f.uc.DailyCount(context.Background(), "Desconhecido")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDailyCount_MidnightBoundary(t *testing.T) {
	midnight := time.Date(2026, time.October, 19, 0, 0, 0, 0, brt)
	f := newFixture(t, func(m *entity.Snapshot) {
		m.Employees = append(m.Employees, entity.Employee{ID: 10, Name: "Carlos"})
		m.Production = append(m.Production,
			entity.ProductionEntry{ID: "a", EmployeeName: "Carlos", StartTime: ms(midnight), Status: entity.StatusFinished},
			entity.ProductionEntry{ID: "b", EmployeeName: "Carlos", StartTime: ms(midnight) - 1, Status: entity.StatusFinished},
			entity.ProductionEntry{ID: "c", EmployeeName: "Carlos", StartTime: ms(midnight.AddDate(0, 0, 1)), Status: entity.StatusFinished},
		)
	}, nil)

	got, err := f.uc.DailyCount(context.Background(), "Carlos")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestMonthlyCount_BaseTimesDayPlusFinished(t *testing.T) {
	f := newFixture(t, carlosLedger, nil)

	got, err := f.uc.MonthlyCount(context.Background(), "Carlos")
	require.NoError(t, err)
	// 5 × 19 + 3 finalizadas en octubre
	assert.Equal(t, 98, got)
}

func TestSectorOccupancy_ClampsPercentKeepsRawCount(t *testing.T) {
	f := newFixture(t, func(m *entity.Snapshot) {
		for i := 0; i < 510; i++ {
			m.Products = append(m.Products, entity.Product{ID: int64(i + 1), Code: fmt.Sprint(1001 + i), Sector: "Triagem"})
		}
		m.Products = append(m.Products, entity.Product{ID: 9000, Code: "9000", Sector: "Corte"})
		m.Production = append(m.Production,
			entity.ProductionEntry{ID: "x", CurrentSector: "Corte", Status: entity.StatusWorking},
			entity.ProductionEntry{ID: "y", CurrentSector: "Corte", Status: entity.StatusFinished},
		)
	}, nil)

	sectors, err := f.uc.SectorOccupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, sectors, len(analytics.TrackedSectors))

	triagem := sectors[0]
	assert.Equal(t, "Triagem", triagem.Name)
	assert.Equal(t, 510, triagem.Count)
	assert.Equal(t, 500, triagem.Capacity)
	assert.True(t, triagem.FillPercent.Equal(decimal.NewFromInt(100)), triagem.FillPercent.String())
	assert.True(t, triagem.OverCapacity)
	assert.True(t, triagem.Alert)

	corte := sectors[1]
	assert.Equal(t, 2, corte.Count)
	assert.Equal(t, 100, corte.Capacity)
	assert.True(t, corte.FillPercent.Equal(decimal.NewFromInt(2)))
	assert.False(t, corte.Alert)

	expedicao := sectors[6]
	assert.Equal(t, "Expedição", expedicao.Name)
	assert.Equal(t, 1000, expedicao.Capacity)
}

func TestSectorOccupancy_CapacityOverrides(t *testing.T) {
	f := newFixture(t, func(m *entity.Snapshot) {
		m.Products = append(m.Products, entity.Product{ID: 1, Code: "1001", Sector: "Corte"})
	}, map[string]int{"Corte": 3})

	sectors, err := f.uc.SectorOccupancy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sectors[1].Capacity)
	assert.True(t, sectors[1].FillPercent.Equal(decimal.NewFromInt(33)), sectors[1].FillPercent.String())
	assert.Equal(t, 500, sectors[0].Capacity)
}

func TestSummary(t *testing.T) {
	f := newFixture(t, func(m *entity.Snapshot) {
		carlosLedger(m)
		m.Products = append(m.Products, entity.Product{ID: 1, Code: "2001", Sector: "Triagem"})
	}, nil)

	s, err := f.uc.Summary(context.Background())
	require.NoError(t, err)

	// admin 0 + Carlos 7 + Beatriz 2
	assert.Equal(t, 9, s.TodayTotal)
	require.Len(t, s.Live, 2)
	assert.Equal(t, "1005", s.Live[0].ID)
	assert.Equal(t, int64(120), s.Live[0].ElapsedSeconds)
	assert.Equal(t, 2, s.Live[0].DailyCount)
	assert.Equal(t, "1004", s.Live[1].ID)
	assert.Equal(t, int64(600), s.Live[1].ElapsedSeconds)
	assert.Equal(t, 7, s.Live[1].DailyCount)
	// 1 producto en Triagem + 1 working en Corte; la pausada no ocupa
	assert.Equal(t, 2, s.TotalWIP)
	assert.Equal(t, now, s.GeneratedAt)
}

func TestMonthlyReport_SortedDescending(t *testing.T) {
	f := newFixture(t, carlosLedger, nil)

	r, err := f.uc.MonthlyReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Outubro 2026", r.MonthLabel)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, "Carlos", r.Rows[0].Name)
	assert.Equal(t, 98, r.Rows[0].Count)
	assert.Equal(t, "Beatriz", r.Rows[1].Name)
	assert.Equal(t, 38, r.Rows[1].Count)
	assert.Equal(t, "Administrador", r.Rows[2].Name)
}

func TestDetails_SplitsLedger(t *testing.T) {
	f := newFixture(t, func(m *entity.Snapshot) {
		carlosLedger(m)
		m.Clients = append(m.Clients, entity.Client{ID: 1, Name: "Loja Azul"})
	}, nil)

	d, err := f.uc.Details(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.Pending, 2)
	assert.Len(t, d.Finished, 3)
	require.Len(t, d.Clients, 1)
	for _, e := range d.Employees {
		if e.Name == "Carlos" {
			assert.Equal(t, 7, e.DailyCount)
		}
	}
}

func TestDashboard_ReloaderSeesRemoteWrites(t *testing.T) {
	backend := snapshot.NewMemoryBackend()
	local := snapshot.NewStore(backend, zerolog.Nop(), nil)
	uc := analytics.NewDashboardUseCase(
		snapshot.NewEmployeeRepository(local),
		snapshot.NewProductRepository(local),
		snapshot.NewProductionRepository(local),
		snapshot.NewClientRepository(local),
		fixedClock{now},
		nil,
	).WithReloader(snapshot.NewCurrentUserRepository(local))

	remote := snapshot.NewStore(backend, zerolog.Nop(), nil)
	require.NoError(t, snapshot.NewEmployeeRepository(remote).Add(context.Background(),
		entity.Employee{ID: 5, Name: "Remota", DailyProductionBase: 4}))

	got, err := uc.DailyCount(context.Background(), "Remota")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestRefresher_PushesUntilStopped(t *testing.T) {
	f := newFixture(t, carlosLedger, nil)

	var calls atomic.Int32
	got := make(chan *dto.DashboardSummaryDTO, 16)
	r := analytics.NewRefresher(f.uc, 10*time.Millisecond, func(s *dto.DashboardSummaryDTO) {
		calls.Add(1)
		select {
		case got <- s:
		default:
		}
	}, zerolog.Nop())

	r.Start(context.Background())
	r.Start(context.Background())

	select {
	case s := <-got:
		assert.Equal(t, 9, s.TodayTotal)
	case <-time.After(time.Second):
		t.Fatal("sin resumen")
	}
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	r.Stop()
	stopped := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
	r.Stop()
}

func TestRefresher_StopsOnContextCancel(t *testing.T) {
	f := newFixture(t, carlosLedger, nil)
	r := analytics.NewRefresher(f.uc, 10*time.Millisecond, func(*dto.DashboardSummaryDTO) {}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	done := r.Done()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("el refresher no se detuvo")
	}
}
