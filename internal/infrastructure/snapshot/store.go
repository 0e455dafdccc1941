package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// Store mantiene el modelo en memoria y lo sincroniza con un Backend.
//
// Toda mutación sigue recargar-antes-de-escribir (Mutate): Load, aplicar el delta, Save.
// El mutex solo serializa goroutines de este proceso. Dos Store sobre el mismo Backend
// que mutan la MISMA colección a la vez pueden perder una actualización (último en
// escribir gana); colecciones distintas convergen.
type Store struct {
	backend Backend
	log     zerolog.Logger
	metrics *Metrics
	writer  string

	mu    sync.Mutex
	model entity.Snapshot
}

// NewStore crea un store con los valores por defecto en memoria. No toca el backend.
func NewStore(backend Backend, log zerolog.Logger, metrics *Metrics) *Store {
	writer := uuid.NewString()
	return &Store{
		backend: backend,
		log:     log.With().Str("component", "snapshot").Str("writer", writer).Logger(),
		metrics: metrics,
		writer:  writer,
		model:   entity.DefaultSnapshot(),
	}
}

// Backend expone el medio durable (lo usa el repositorio de sesión).
func (s *Store) Backend() Backend { return s.backend }

// Load relee el snapshot durable. Cualquier fallo se registra y se absorbe:
// el modelo en memoria queda como estaba.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
}

// Save escribe el modelo completo como un único blob. Los fallos se registran y se absorben.
func (s *Store) Save(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(ctx)
}

// Mutate aplica fn sobre el modelo recién recargado y guarda si fn devuelve true.
// Solo devuelve error si el contexto ya estaba cancelado.
func (s *Store) Mutate(ctx context.Context, fn func(m *entity.Snapshot) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	if fn(&s.model) {
		s.saveLocked(ctx)
	}
	return nil
}

// View da acceso de lectura al modelo en memoria, sin recargar. fn no debe retener ni modificar los slices.
func (s *Store) View(fn func(m entity.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.model)
}

// Snapshot devuelve una copia del modelo en memoria.
func (s *Store) Snapshot() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Clone()
}

// Encode serializa el modelo en memoria tal como lo haría Save.
func (s *Store) Encode() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.model)
}

func (s *Store) loadLocked(ctx context.Context) {
	raw, err := s.backend.Read(ctx, KeySnapshot)
	if errors.Is(err, ErrNotFound) {
		s.metrics.observe("load", outcomeMissing)
		return
	}
	if err != nil {
		s.metrics.observe("load", outcomeError)
		s.log.Error().Err(err).Msg("error al cargar datos")
		return
	}
	if decodeInto(&s.model, raw, s.log) {
		s.metrics.observe("load", outcomeOK)
	} else {
		s.metrics.observe("load", outcomeCorrupt)
	}
}

func (s *Store) saveLocked(ctx context.Context) {
	raw, err := json.Marshal(s.model)
	if err != nil {
		s.metrics.observe("save", outcomeError)
		s.log.Error().Err(err).Msg("error al serializar datos")
		return
	}
	if err := s.backend.Write(ctx, KeySnapshot, raw); err != nil {
		s.metrics.observe("save", outcomeError)
		s.log.Error().Err(err).Msg("error al guardar datos")
		return
	}
	s.metrics.observe("save", outcomeOK)
	s.metrics.size(len(raw))
}

// decodeInto aplica cada clave de nivel superior por separado. Una clave ausente,
// null o malformada deja esa colección con su valor actual. Devuelve false si hubo
// algún problema de formato.
func decodeInto(m *entity.Snapshot, raw []byte, log zerolog.Logger) bool {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Msg("snapshot ilegible, se mantiene el estado en memoria")
		return false
	}

	ok := true
	ok = decodeKey(doc, "employees", &m.Employees, log) && ok
	ok = decodeKey(doc, "products", &m.Products, log) && ok
	ok = decodeKey(doc, "clients", &m.Clients, log) && ok
	ok = decodeKey(doc, "production", &m.Production, log) && ok
	ok = decodeKey(doc, "sectors", &m.Sectors, log) && ok

	if v, present := doc["currentUser"]; present && !isNull(v) {
		var u entity.Employee
		if err := json.Unmarshal(v, &u); err != nil {
			log.Warn().Err(err).Msg("currentUser malformado, se ignora")
			ok = false
		} else {
			m.CurrentUser = &u
		}
	}
	return ok
}

func decodeKey[T any](doc map[string]json.RawMessage, key string, dst *[]T, log zerolog.Logger) bool {
	v, present := doc[key]
	if !present || isNull(v) {
		return true
	}
	var out []T
	if err := json.Unmarshal(v, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("colección malformada, se conserva la versión en memoria")
		return false
	}
	if out == nil {
		out = []T{}
	}
	*dst = out
	return true
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}
