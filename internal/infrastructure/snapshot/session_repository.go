package snapshot

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
)

// SessionRepo guarda la ProductionSession bajo la clave "session" del backend,
// fuera del snapshot principal. Los fallos de E/S se registran y se absorben.
type SessionRepo struct {
	backend Backend
	log     zerolog.Logger
}

func NewSessionRepository(backend Backend, log zerolog.Logger) *SessionRepo {
	return &SessionRepo{backend: backend, log: log.With().Str("component", "session").Logger()}
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

func (r *SessionRepo) Get(ctx context.Context) (*entity.ProductionSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.backend.Read(ctx, KeySession)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error().Err(err).Msg("error al leer la sesión")
		return nil, nil
	}
	var s entity.ProductionSession
	if err := json.Unmarshal(raw, &s); err != nil {
		r.log.Warn().Err(err).Msg("sesión malformada, se descarta")
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Save(ctx context.Context, s entity.ProductionSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		r.log.Error().Err(err).Msg("error al serializar la sesión")
		return nil
	}
	if err := r.backend.Write(ctx, KeySession, raw); err != nil {
		r.log.Error().Err(err).Msg("error al guardar la sesión")
	}
	return nil
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.backend.Delete(ctx, KeySession); err != nil {
		r.log.Error().Err(err).Msg("error al borrar la sesión")
	}
	return nil
}
