package auth_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
	pkgjwt "github.com/jhoicas/recout-api/pkg/jwt"
)

type fixture struct {
	backend  *snapshot.MemoryBackend
	store    *snapshot.Store
	sessions *snapshot.SessionRepo
	uc       *auth.AuthUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	b := snapshot.NewMemoryBackend()
	return fixtureOn(b)
}

func fixtureOn(b *snapshot.MemoryBackend) fixture {
	store := snapshot.NewStore(b, zerolog.Nop(), nil)
	sessions := snapshot.NewSessionRepository(b, zerolog.Nop())
	uc := auth.NewAuthUseCase(
		snapshot.NewEmployeeRepository(store),
		snapshot.NewCurrentUserRepository(store),
		sessions,
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "recout-test"},
	)
	return fixture{backend: b, store: store, sessions: sessions, uc: uc}
}

func TestLogin_SeededAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.True(t, f.uc.Login(ctx, "admin", "123"))
	user := f.uc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Administrador", user.Name)

	// El puntero se persiste: otro store sobre el mismo backend lo ve al cargar.
	other := snapshot.NewStore(f.backend, zerolog.Nop(), nil)
	other.Load(ctx)
	require.NotNil(t, other.Snapshot().CurrentUser)
	assert.Equal(t, int64(1), other.Snapshot().CurrentUser.ID)
}

func TestLogin_WrongPasswordLeavesUserUnset(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.uc.Login(context.Background(), "admin", "wrong"))
	assert.Nil(t, f.uc.CurrentUser())
}

func TestLogin_UsernameIsTrimmedAndCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.uc.Login(context.Background(), "  ADMIN ", "123"))
	assert.False(t, f.uc.Login(context.Background(), "nadie", "123"))
}

func TestLogin_SeesEmployeeRegisteredElsewhere(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.Load(ctx)

	// Otra "ventana" registra un empleado con password bcrypt.
	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)
	elsewhere := snapshot.NewStore(f.backend, zerolog.Nop(), nil)
	require.NoError(t, snapshot.NewEmployeeRepository(elsewhere).Add(ctx, entity.Employee{
		ID: 77, Name: "Ana Maria", Sector: "Corte", Username: "ana", Password: hash,
	}))

	require.True(t, f.uc.Login(ctx, "Ana", "segredo"))
	assert.Equal(t, "Ana Maria", f.uc.CurrentUser().Name)
}

func TestLogout_ClearsUserAndSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.uc.Login(ctx, "admin", "123"))
	require.NoError(t, f.sessions.Save(ctx, entity.ProductionSession{EmployeeName: "Administrador", PartID: "1001"}))

	require.NoError(t, f.uc.Logout(ctx))
	assert.Nil(t, f.uc.CurrentUser())
	s, err := f.sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLoginWithToken(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.LoginWithToken(context.Background(), dto.LoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.EmployeeID)
	assert.Equal(t, "Administrador", resp.User.Name)

	_, err = f.uc.LoginWithToken(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPasswordMatches(t *testing.T) {
	hash, err := auth.HashPassword("abc")
	require.NoError(t, err)

	assert.True(t, auth.PasswordMatches(hash, "abc"))
	assert.False(t, auth.PasswordMatches(hash, "abd"))
	assert.True(t, auth.PasswordMatches("123", "123"))
	assert.False(t, auth.PasswordMatches("", ""))
}
