package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/domain/repository"
	"github.com/jhoicas/recout-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase resuelve credenciales contra los empleados y mantiene el puntero al usuario actual.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	current   repository.CurrentUserRepository
	sessions  repository.SessionRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	employees repository.EmployeeRepository,
	current repository.CurrentUserRepository,
	sessions repository.SessionRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{employees: employees, current: current, sessions: sessions, jwtCfg: jwtCfg}
}

// Login recarga el almacenamiento, busca el usuario (sin distinguir mayúsculas) y compara
// el password. Si coincide, fija y persiste el usuario actual. Solo devuelve éxito/fallo.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) bool {
	_, ok := uc.login(ctx, username, password)
	return ok
}

// LoginWithToken es Login más la emisión del JWT para la API HTTP.
func (uc *AuthUseCase) LoginWithToken(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, ok := uc.login(ctx, in.Username, in.Password)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.Name, emp.Sector, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: ToEmployeeResponse(*emp)}, nil
}

// Logout limpia el usuario actual, descarta la sesión de producción activa y persiste.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.sessions.Clear(ctx); err != nil {
		return err
	}
	return uc.current.SetCurrent(ctx, nil)
}

// CurrentUser devuelve el puntero tal cual; nil = sesión cerrada.
func (uc *AuthUseCase) CurrentUser() *entity.Employee {
	return uc.current.Current()
}

// FindEmployee recarga y busca un empleado por id (lo usa el middleware HTTP).
func (uc *AuthUseCase) FindEmployee(ctx context.Context, id int64) (*entity.Employee, error) {
	uc.current.Reload(ctx)
	all, err := uc.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (uc *AuthUseCase) login(ctx context.Context, username, password string) (*entity.Employee, bool) {
	uc.current.Reload(ctx)

	all, err := uc.employees.GetAll(ctx)
	if err != nil {
		return nil, false
	}
	want := foldUsername(username)
	for i := range all {
		e := all[i]
		if e.Username == "" || foldUsername(e.Username) != want {
			continue
		}
		// Primer usuario con ese nombre: si el password no coincide no se sigue buscando.
		if !PasswordMatches(e.Password, password) {
			return nil, false
		}
		if err := uc.current.SetCurrent(ctx, &e); err != nil {
			return nil, false
		}
		return &e, true
	}
	return nil, false
}

// PasswordMatches compara contra un hash bcrypt (altas nuevas) o contra texto plano (semilla).
func PasswordMatches(stored, given string) bool {
	if stored == "" {
		return false
	}
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

// HashPassword genera el hash bcrypt que se guarda en Employee.Password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// foldUsername normaliza para comparar: recorta espacios y aplica case folding Unicode.
// Un Caser no se comparte entre goroutines.
func foldUsername(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ToEmployeeResponse convierte la entidad en DTO sin password.
func ToEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Sector:              e.Sector,
		Avatar:              e.Avatar,
		CPF:                 e.CPF,
		Status:              e.Status,
		Username:            e.Username,
		DailyProductionBase: e.DailyProductionBase,
	}
}
