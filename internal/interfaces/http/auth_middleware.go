package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/pkg/jwt"
)

// Locals keys del operador autenticado.
const (
	LocalEmployeeID = "employee_id"
	LocalName       = "employee_name"
	LocalSector     = "employee_sector"
)

// AuthMiddleware valida el Bearer Token JWT y deja los datos del operador en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmployeeID, claims.EmployeeID)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalSector, claims.Sector)
		return c.Next()
	}
}

// GetEmployeeID devuelve el id del token (0 si no pasó por AuthMiddleware).
func GetEmployeeID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalEmployeeID).(int64)
	return id
}

// GetEmployeeName devuelve el nombre del token.
func GetEmployeeName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalName).(string)
	return s
}
