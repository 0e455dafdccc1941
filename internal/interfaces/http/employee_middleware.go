package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/domain"
	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// LocalEmployee guarda el *entity.Employee resuelto.
const LocalEmployee = "employee"

// employeeLookup es el contrato mínimo que necesita el middleware. Lo implementa *auth.AuthUseCase.
type employeeLookup interface {
	FindEmployee(ctx context.Context, id int64) (*entity.Employee, error)
}

// RequireEmployee resuelve el empleado del token contra la colección actual. Debe usarse
// DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay id en el contexto.
//   - 403 si el empleado fue dado de baja después de emitir el token.
//   - 503 si falla la lectura.
func RequireEmployee(lookup employeeLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetEmployeeID(c)
		if id == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "employee_id no encontrado en el token",
			})
		}

		emp, err := lookup.FindEmployee(c.UserContext(), id)
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "EMPLOYEE_REMOVED",
				Message: "el empleado del token ya no existe",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "EMPLOYEE_CHECK_FAILED",
				Message: "no se pudo verificar el empleado, intente más tarde",
			})
		}

		c.Locals(LocalEmployee, emp)
		return c.Next()
	}
}

// CurrentEmployee devuelve el empleado resuelto por RequireEmployee.
func CurrentEmployee(c *fiber.Ctx) *entity.Employee {
	e, _ := c.Locals(LocalEmployee).(*entity.Employee)
	return e
}
