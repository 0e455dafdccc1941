package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/infrastructure/postgres"
	s3backend "github.com/jhoicas/recout-api/internal/infrastructure/s3"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/recout-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/recout-api/pkg/config"
)

// Open construye el backend del snapshot según STORAGE_DRIVER.
// El closer devuelto libera conexiones; nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (snapshot.Backend, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn().Msg("storage en memoria: los datos se pierden al reiniciar")
		return snapshot.NewMemoryBackend(), noop, nil

	case config.DriverFile:
		b, err := snapshot.NewFileBackend(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("dir", cfg.Storage.Dir).Msg("storage en archivos")
		return b, noop, nil

	case config.DriverSQLite:
		b, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("path", cfg.Storage.SQLitePath).Msg("storage sqlite")
		return b, func() { _ = b.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Msg("storage postgres")
		return postgres.NewStateBackend(pool), pool.Close, nil

	case config.DriverS3:
		b, err := s3backend.New(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Str("prefix", cfg.S3.Prefix).Msg("storage s3")
		return b, noop, nil
	}
	return nil, noop, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}
