package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/application/production"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

type rig struct {
	clock    *stubClock
	ledger   *snapshot.ProductionRepo
	sessions *snapshot.SessionRepo
	backend  *snapshot.MemoryBackend
}

func newRig() rig {
	b := snapshot.NewMemoryBackend()
	store := snapshot.NewStore(b, zerolog.Nop(), nil)
	return rig{
		clock:    &stubClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)},
		ledger:   snapshot.NewProductionRepository(store),
		sessions: snapshot.NewSessionRepository(b, zerolog.Nop()),
		backend:  b,
	}
}

func (r rig) machine(t *testing.T, user entity.Employee) *production.Machine {
	t.Helper()
	m := production.NewMachine(r.ledger, r.sessions, r.clock, zerolog.Nop())
	require.NoError(t, m.Restore(context.Background(), user))
	return m
}

var (
	alice = entity.Employee{ID: 10, Name: "Alice", Sector: "Corte"}
	bob   = entity.Employee{ID: 11, Name: "Bob", Sector: "Costura"}
	part  = entity.Product{ID: 1, Name: "Camisa Polo", Code: "1001", Client: "ACME", Sector: "Corte"}
)

func ledgerLen(t *testing.T, r rig) int {
	t.Helper()
	all, err := r.ledger.GetAll(context.Background())
	require.NoError(t, err)
	return len(all)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMachine_FullCycle(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	assert.Equal(t, production.StateIdle, m.State())
	assert.Equal(t, "Corte", m.Session().CurrentSector)

	ok, err := m.SelectPart(ctx, part)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = m.SelectNextSector(ctx, "Costura")
	require.NoError(t, err)

	ok, err = m.Start(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, production.StateRunning, m.State())
	assert.Equal(t, "1001", m.Session().ProcessID)

	r.clock.now = r.clock.now.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, m.Elapsed())

	elapsed, ok, err := m.AdvanceSector(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, elapsed)
	assert.Equal(t, production.StateFinished, m.State())

	entries, _ := r.ledger.GetAll(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.StatusFinished, entries[0].Status)
	assert.Equal(t, "Costura", entries[0].CurrentSector)
	assert.Equal(t, "Alice", entries[0].EmployeeName)

	// En Finished el tiempo queda congelado.
	r.clock.now = r.clock.now.Add(time.Hour)
	assert.Equal(t, 90*time.Second, m.Elapsed())

	require.NoError(t, m.Reset(ctx))
	assert.Equal(t, production.StateIdle, m.State())
	assert.Empty(t, m.Session().PartID)
	assert.Equal(t, "Corte", m.Session().CurrentSector)
	assert.Equal(t, 1, ledgerLen(t, r), "reset no borra el ledger")
}

func TestMachine_AdvanceWhileIdleIsNoop(t *testing.T) {
	r := newRig()
	m := r.machine(t, alice)

	_, ok, err := m.AdvanceSector(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, production.StateIdle, m.State())
	assert.Zero(t, ledgerLen(t, r))
}

func TestMachine_DoubleStartCreatesOneEntry(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, err := m.SelectPart(ctx, part)
	require.NoError(t, err)

	ok, err := m.Start(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.Start(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, ledgerLen(t, r))
}

func TestMachine_StartRequiresPartAndClient(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)

	ok, err := m.Start(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.SelectPart(ctx, entity.Product{Code: "2000", Name: "Sem cliente"})
	require.NoError(t, err)
	ok, err = m.Start(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, ledgerLen(t, r))
}

func TestMachine_PartAndSectorLockedWhileRunning(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, _ = m.SelectPart(ctx, part)
	_, err := m.Start(ctx)
	require.NoError(t, err)

	ok, err := m.SelectPart(ctx, entity.Product{Code: "9999", Client: "Outro"})
	require.NoError(t, err)
	assert.False(t, ok)
	ok, _ = m.SelectCurrentSector(ctx, "Bordado")
	assert.False(t, ok)
	ok, _ = m.SelectNextSector(ctx, "Embalagem")
	assert.True(t, ok, "el sector siguiente se puede editar siempre")

	s := m.Session()
	assert.Equal(t, "1001", s.PartID)
	assert.Equal(t, "Corte", s.CurrentSector)
	assert.Equal(t, "Embalagem", s.NextSector)
}

func TestMachine_ResetFromAnyState(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, _ = m.SelectPart(ctx, part)
	_, err := m.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Reset(ctx))
	assert.Equal(t, production.StateIdle, m.State())

	entries, _ := r.ledger.GetAll(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.StatusWorking, entries[0].Status, "la entrada sigue abierta en el ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauración de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestMachine_RestoreSameUserRecomputesElapsed(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, _ = m.SelectPart(ctx, part)
	_, err := m.Start(ctx)
	require.NoError(t, err)

	// "Recarga" tres horas después.
	r.clock.now = r.clock.now.Add(3 * time.Hour)
	again := r.machine(t, alice)
	assert.Equal(t, production.StateRunning, again.State())
	assert.Equal(t, "1001", again.Session().PartID)
	assert.Equal(t, 3*time.Hour, again.Elapsed())
}

func TestMachine_StaleSessionDiscarded(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, _ = m.SelectPart(ctx, part)
	_, err := m.Start(ctx)
	require.NoError(t, err)

	forBob := r.machine(t, bob)
	assert.Equal(t, production.StateIdle, forBob.State())
	s := forBob.Session()
	assert.Equal(t, "Bob", s.EmployeeName)
	assert.Equal(t, "Costura", s.CurrentSector)
	assert.Empty(t, s.PartID)

	persisted, err := r.sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted, "la sesión de Alice se borra del slot")
}

func TestMachine_FieldEditsArePersisted(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	m := r.machine(t, alice)
	_, err := m.SelectPart(ctx, part)
	require.NoError(t, err)

	persisted, err := r.sessions.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "ACME", persisted.ClientName)
	assert.Equal(t, "Camisa Polo", persisted.PartName)
}

func TestService_DoAndFindProduct(t *testing.T) {
	ctx := context.Background()
	r := newRig()
	store := snapshot.NewStore(r.backend, zerolog.Nop(), nil)
	products := snapshot.NewProductRepository(store)
	require.NoError(t, products.Add(ctx, part))

	svc := production.NewService(r.ledger, r.sessions, products, r.clock, zerolog.Nop())
	p, err := svc.FindProduct(ctx, "1001")
	require.NoError(t, err)

	err = svc.Do(ctx, alice, func(m *production.Machine) error {
		if _, err := m.SelectPart(ctx, p); err != nil {
			return err
		}
		_, err := m.Start(ctx)
		return err
	})
	require.NoError(t, err)

	err = svc.Do(ctx, alice, func(m *production.Machine) error {
		assert.Equal(t, production.StateRunning, m.State())
		return nil
	})
	require.NoError(t, err)

	_, err = svc.FindProduct(ctx, "404")
	assert.Error(t, err)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", production.FormatElapsed(-time.Second))
	assert.Equal(t, "01:01:05", production.FormatElapsed(time.Hour+time.Minute+5*time.Second))
	assert.Equal(t, "27:00:00", production.FormatElapsed(27*time.Hour))
}
