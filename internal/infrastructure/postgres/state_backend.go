package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
)

// Querier es lo mínimo que necesita el backend: *pgxpool.Pool, pgx.Tx o pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createStateSQL = `CREATE TABLE IF NOT EXISTS state (bucket TEXT PRIMARY KEY, payload JSONB NOT NULL)`
	selectStateSQL = `SELECT payload FROM state WHERE bucket = $1`
	upsertStateSQL = `INSERT INTO state (bucket, payload) VALUES ($1, $2) ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload`
	deleteStateSQL = `DELETE FROM state WHERE bucket = $1`
)

// EnsureSchema crea la tabla state si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createStateSQL); err != nil {
		return fmt.Errorf("crear tabla state: %w", err)
	}
	return nil
}

// StateBackend guarda cada clave del snapshot como una fila JSONB de la tabla state.
type StateBackend struct {
	q Querier
}

// NewStateBackend construye el adaptador. Pasar pool o tx (Querier).
func NewStateBackend(q Querier) *StateBackend {
	return &StateBackend{q: q}
}

var _ snapshot.Backend = (*StateBackend)(nil)

func (b *StateBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := b.q.QueryRow(ctx, selectStateSQL, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, snapshot.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer state %s: %w", key, err)
	}
	return payload, nil
}

func (b *StateBackend) Write(ctx context.Context, key string, data []byte) error {
	if _, err := b.q.Exec(ctx, upsertStateSQL, key, data); err != nil {
		return fmt.Errorf("guardar state %s: %w", key, err)
	}
	return nil
}

func (b *StateBackend) Delete(ctx context.Context, key string) error {
	if _, err := b.q.Exec(ctx, deleteStateSQL, key); err != nil {
		return fmt.Errorf("borrar state %s: %w", key, err)
	}
	return nil
}
