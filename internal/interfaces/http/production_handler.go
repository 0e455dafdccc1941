package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/production"
)

// ProductionHandler expone la máquina de producción del operador autenticado.
//
// Las transiciones ilegales responden 200 con applied=false y el estado sin cambios.
type ProductionHandler struct {
	svc *production.Service
}

func NewProductionHandler(svc *production.Service) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// Ledger godoc
// @Summary      Ledger de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.ProductionEntry
// @Router       /api/production [get]
func (h *ProductionHandler) Ledger(c *fiber.Ctx) error {
	out, err := h.svc.Ledger(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Session godoc
// @Summary      Sesión de producción actual
// @Description  Restaura la sesión del operador; la de otro operador se descarta.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/production/session [get]
func (h *ProductionHandler) Session(c *fiber.Ctx) error {
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return true, nil
	})
}

// SelectPart godoc
// @Summary      Seleccionar pieza por código
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectPartRequest  true  "código de la pieza"
// @Success      200   {object}  dto.SessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/session/part [put]
func (h *ProductionHandler) SelectPart(c *fiber.Ctx) error {
	var in dto.SelectPartRequest
	if err := c.BodyParser(&in); err != nil || in.Code == "" {
		return badBody(c)
	}
	p, err := h.svc.FindProduct(c.UserContext(), in.Code)
	if err != nil {
		return respondError(c, err)
	}
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return m.SelectPart(ctx, p)
	})
}

// SelectSector godoc
// @Summary      Cambiar sector actual
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectSectorRequest  true  "sector"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/production/session/sector [put]
func (h *ProductionHandler) SelectSector(c *fiber.Ctx) error {
	var in dto.SelectSectorRequest
	if err := c.BodyParser(&in); err != nil || in.Sector == "" {
		return badBody(c)
	}
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return m.SelectCurrentSector(ctx, in.Sector)
	})
}

// SelectNextSector godoc
// @Summary      Cambiar sector siguiente
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectSectorRequest  true  "sector (vacío = ninguno)"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/production/session/next-sector [put]
func (h *ProductionHandler) SelectNextSector(c *fiber.Ctx) error {
	var in dto.SelectSectorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return m.SelectNextSector(ctx, in.Sector)
	})
}

// Start godoc
// @Summary      Iniciar producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/production/start [post]
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return m.Start(ctx)
	})
}

// Advance godoc
// @Summary      Finalizar y avanzar al sector siguiente
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/production/advance [post]
func (h *ProductionHandler) Advance(c *fiber.Ctx) error {
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		_, ok, err := m.AdvanceSector(ctx)
		return ok, err
	})
}

// Reset godoc
// @Summary      Nuevo ciclo
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/production/reset [post]
func (h *ProductionHandler) Reset(c *fiber.Ctx) error {
	return h.run(c, func(ctx context.Context, m *production.Machine) (bool, error) {
		return true, m.Reset(ctx)
	})
}

// run restaura la máquina del operador, aplica fn y responde con el estado resultante.
func (h *ProductionHandler) run(c *fiber.Ctx, fn func(ctx context.Context, m *production.Machine) (bool, error)) error {
	user := CurrentEmployee(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "operador no resuelto"})
	}

	var out dto.SessionResponse
	err := h.svc.Do(c.UserContext(), *user, func(m *production.Machine) error {
		applied, err := fn(c.UserContext(), m)
		if err != nil {
			return err
		}
		out = sessionResponse(m, applied)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func sessionResponse(m *production.Machine, applied bool) dto.SessionResponse {
	elapsed := m.Elapsed()
	return dto.SessionResponse{
		State:          string(m.State()),
		Session:        m.Session(),
		ElapsedSeconds: int64(elapsed / time.Second),
		Elapsed:        production.FormatElapsed(elapsed),
		Applied:        applied,
	}
}
