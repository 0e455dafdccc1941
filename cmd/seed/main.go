// seed aplica un archivo YAML de datos iniciales sobre el backend configurado (STORAGE_DRIVER).
//
// Uso: go run ./cmd/seed -file seed.yaml [-replace]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/recout-api/internal/infrastructure/seed"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/recout-api/internal/infrastructure/storage"
	"github.com/jhoicas/recout-api/pkg/config"
	"github.com/jhoicas/recout-api/pkg/logger"
)

func main() {
	path := flag.String("file", "seed.yaml", "archivo YAML de semilla")
	replace := flag.Bool("replace", false, "reemplazar las colecciones presentes en la semilla")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "recout-seed"})

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("abrir semilla")
	}
	defer f.Close()

	data, err := seed.Parse(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer semilla")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, closeBackend, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeBackend()

	store := snapshot.NewStore(backend, log.Component("snapshot"), nil)
	res, err := seed.Apply(ctx, store, data, *replace)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar semilla")
	}
	log.Info().
		Int("employees", res.Employees).
		Int("clients", res.Clients).
		Int("products", res.Products).
		Int("sectors", res.Sectors).
		Bool("replace", *replace).
		Msg("semilla aplicada")
}
