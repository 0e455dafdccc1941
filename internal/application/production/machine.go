package production

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// State estado derivado de los flags de la sesión.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// Machine es el flujo de trabajo de un operador: Idle → Running → Finished → (Reset) Idle.
//
// Las transiciones ilegales no son errores: el método devuelve false y no toca nada.
// Solo se devuelven errores de contexto o del ledger.
type Machine struct {
	ledger   repository.ProductionRepository
	sessions repository.SessionRepository
	clock    ports.Clock
	log      zerolog.Logger

	mu      sync.Mutex
	user    entity.Employee
	session entity.ProductionSession
}

// NewMachine crea una máquina en Idle. Llamar Restore antes de usarla.
func NewMachine(ledger repository.ProductionRepository, sessions repository.SessionRepository, clock ports.Clock, log zerolog.Logger) *Machine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Machine{
		ledger:   ledger,
		sessions: sessions,
		clock:    clock,
		log:      log.With().Str("component", "production").Logger(),
	}
}

// Restore carga la sesión persistida si pertenece a user; si es de otro operador la descarta
// y arranca en Idle con los datos de user.
func (m *Machine) Restore(ctx context.Context, user entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
	m.session = m.defaults()

	saved, err := m.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if saved == nil {
		return nil
	}
	if saved.EmployeeName != user.Name {
		m.log.Info().Str("owner", saved.EmployeeName).Str("user", user.Name).Msg("sesión de otro operador descartada")
		return m.sessions.Clear(ctx)
	}
	m.session = *saved
	return nil
}

// State deriva el estado de los flags.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return stateOf(m.session)
}

// Session devuelve una copia de la sesión actual.
func (m *Machine) Session() entity.ProductionSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Elapsed se recalcula siempre desde los timestamps.
func (m *Machine) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return elapsedOf(m.session, m.clock.Now())
}

// SelectPart fija la pieza y su cliente. Ignorado mientras corre.
func (m *Machine) SelectPart(ctx context.Context, p entity.Product) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stateOf(m.session) == StateRunning {
		return false, nil
	}
	m.session.PartID = p.Code
	m.session.PartName = p.Name
	m.session.ClientName = p.Client
	return true, m.persist(ctx)
}

// SelectCurrentSector cambia el sector de trabajo. Ignorado mientras corre.
func (m *Machine) SelectCurrentSector(ctx context.Context, sector string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stateOf(m.session) == StateRunning {
		return false, nil
	}
	m.session.CurrentSector = sector
	return true, m.persist(ctx)
}

// SelectNextSector se puede editar en cualquier estado.
func (m *Machine) SelectNextSector(ctx context.Context, sector string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.NextSector = sector
	return true, m.persist(ctx)
}

// Start abre una entrada working en el ledger. Requiere pieza y cliente y solo es legal
// desde Idle, así nunca se crean dos entradas para el mismo proceso.
func (m *Machine) Start(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if stateOf(m.session) != StateIdle || m.session.PartID == "" || m.session.ClientName == "" {
		return false, nil
	}

	now := m.clock.Now().UnixMilli()
	entry := entity.ProductionEntry{
		ID:            m.session.PartID,
		EmployeeName:  m.session.EmployeeName,
		Avatar:        m.session.SelectedAvatar,
		PartName:      m.session.PartName,
		PartCode:      m.session.PartID,
		CurrentSector: m.session.CurrentSector,
		StartTime:     now,
		Status:        entity.StatusWorking,
	}
	if err := m.ledger.Start(ctx, entry); err != nil {
		return false, fmt.Errorf("abrir entrada: %w", err)
	}

	m.session.StartTime = now
	m.session.StopTime = nil
	m.session.ProcessID = m.session.PartID
	m.session.IsRunning = true
	m.session.IsFinished = false
	m.log.Info().Str("process", m.session.ProcessID).Str("employee", m.session.EmployeeName).Msg("producción iniciada")
	return true, m.persist(ctx)
}

// AdvanceSector cierra el trabajo en curso: mueve la entrada al sector siguiente (si hay)
// y la marca finished. Solo legal desde Running. Devuelve el tiempo transcurrido.
func (m *Machine) AdvanceSector(ctx context.Context) (time.Duration, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if stateOf(m.session) != StateRunning {
		return 0, false, nil
	}

	stop := m.clock.Now().UnixMilli()
	id := m.session.PartID
	if m.session.NextSector != "" {
		if err := m.ledger.UpdateSector(ctx, id, m.session.NextSector); err != nil {
			return 0, false, fmt.Errorf("mover entrada: %w", err)
		}
	}
	if err := m.ledger.Finish(ctx, id); err != nil {
		return 0, false, fmt.Errorf("cerrar entrada: %w", err)
	}

	m.session.StopTime = &stop
	m.session.IsRunning = false
	m.session.IsFinished = true
	elapsed := elapsedOf(m.session, time.UnixMilli(stop))
	m.log.Info().Str("process", id).Dur("elapsed", elapsed).Msg("producción finalizada")
	return elapsed, true, m.persist(ctx)
}

// Reset vuelve a Idle desde cualquier estado y borra el slot de sesión. El ledger no se toca.
func (m *Machine) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = m.defaults()
	return m.sessions.Clear(ctx)
}

func (m *Machine) defaults() entity.ProductionSession {
	return entity.ProductionSession{
		EmployeeName:   m.user.Name,
		CurrentSector:  m.user.Sector,
		SelectedAvatar: m.user.Avatar,
	}
}

func (m *Machine) persist(ctx context.Context) error {
	return m.sessions.Save(ctx, m.session)
}

func stateOf(s entity.ProductionSession) State {
	switch {
	case s.IsRunning:
		return StateRunning
	case s.IsFinished:
		return StateFinished
	default:
		return StateIdle
	}
}

func elapsedOf(s entity.ProductionSession, now time.Time) time.Duration {
	switch stateOf(s) {
	case StateRunning:
		return time.Duration(now.UnixMilli()-s.StartTime) * time.Millisecond
	case StateFinished:
		if s.StopTime == nil {
			return 0
		}
		return time.Duration(*s.StopTime-s.StartTime) * time.Millisecond
	}
	return 0
}

// FormatElapsed formatea como HH:MM:SS; negativos cuentan como cero.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
