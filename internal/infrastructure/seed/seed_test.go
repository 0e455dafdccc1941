package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/infrastructure/seed"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
)

const sample = `
employees:
  - id: 10
    name: Carlos
    sector: Corte
    cpf: 123.456.789-01
    username: carlos
    password: abc
    dailyProductionBase: 5
clients:
  - id: 1
    name: Loja Azul
    doc: 12.345.678/0001-95
products:
  - id: 1
    name: Camisa
    code: "1001"
    client: Loja Azul
    sector: Triagem
`

func TestParseAndApply(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Employees, 1)

	store := snapshot.NewStore(snapshot.NewMemoryBackend(), zerolog.Nop(), nil)
	res, err := seed.Apply(ctx, store, f, false)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Employees: 1, Clients: 1, Products: 1}, res)

	snap := store.Snapshot()
	// admin sembrado + Carlos
	require.Len(t, snap.Employees, 2)
	carlos := snap.Employees[1]
	assert.Equal(t, 5, carlos.DailyProductionBase)
	assert.True(t, auth.PasswordMatches(carlos.Password, "abc"))
	assert.Len(t, snap.Sectors, 7)

	// idempotente por id
	res, err = seed.Apply(ctx, store, f, false)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, res)
}

func TestApply_Replace(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	store := snapshot.NewStore(snapshot.NewMemoryBackend(), zerolog.Nop(), nil)
	_, err = seed.Apply(ctx, store, f, true)
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Employees, 1)
	assert.Equal(t, "Carlos", snap.Employees[0].Name)
	// sin sectores en la semilla: se conservan los por defecto
	assert.Len(t, snap.Sectors, 7)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("employes: []\n"))
	assert.Error(t, err)
}
