package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/recovery"
)

// RecoveryHandler genera planes de reconstrucción con IA.
type RecoveryHandler struct {
	uc *recovery.UseCase
}

func NewRecoveryHandler(uc *recovery.UseCase) *RecoveryHandler {
	return &RecoveryHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar plan de recuperación
// @Description  Envía la descripción libre al modelo y devuelve el plan en markdown.
// @Description  Una sola llamada, sin reintentos.
// @Tags         recovery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecoveryRequest  true  "descripción del proyecto"
// @Success      200   {object}  dto.RecoveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/recovery [post]
func (h *RecoveryHandler) Generate(c *fiber.Ctx) error {
	var in dto.RecoveryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GeneratePlan(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
