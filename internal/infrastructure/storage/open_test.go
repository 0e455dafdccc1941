package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/recout-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/recout-api/internal/infrastructure/storage"
	"github.com/jhoicas/recout-api/pkg/config"
)

func TestOpen_LocalDrivers(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		driver string
		check  func(t *testing.T, b snapshot.Backend)
	}{
		{config.DriverMemory, func(t *testing.T, b snapshot.Backend) { assert.IsType(t, &snapshot.MemoryBackend{}, b) }},
		{config.DriverFile, func(t *testing.T, b snapshot.Backend) { assert.IsType(t, &snapshot.FileBackend{}, b) }},
		{config.DriverSQLite, func(t *testing.T, b snapshot.Backend) { assert.IsType(t, &sqlite.Backend{}, b) }},
	}
	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{
				Driver:     tc.driver,
				Dir:        filepath.Join(dir, "files"),
				SQLitePath: filepath.Join(dir, "db", "recout.db"),
			}}
			b, closer, err := storage.Open(context.Background(), cfg, zerolog.Nop())
			require.NoError(t, err)
			defer closer()
			tc.check(t, b)

			require.NoError(t, b.Write(context.Background(), snapshot.KeySnapshot, []byte(`{}`)))
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "etcd"}}
	_, closer, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.NotNil(t, closer)
}
