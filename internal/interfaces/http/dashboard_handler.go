package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	appanalytics "github.com/jhoicas/recout-api/internal/application/analytics"
	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
)

// DashboardHandler maneja los endpoints del panel.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	renderer ports.MonthlyReportRenderer
	interval time.Duration
	// base cancela todos los streams al apagar el servidor.
	base context.Context
	log  zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	base context.Context,
	uc *appanalytics.DashboardUseCase,
	renderer ports.MonthlyReportRenderer,
	interval time.Duration,
	log zerolog.Logger,
) *DashboardHandler {
	return &DashboardHandler{uc: uc, renderer: renderer, interval: interval, base: base, log: log}
}

// Summary godoc
// @Summary      Resumen del panel
// @Description  Producción de hoy, producción en vivo, ocupación de sectores y WIP total.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Reporte mensual
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MonthlyReportDTO
// @Router       /api/dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/monthly.pdf [get]
func (h *DashboardHandler) MonthlyPDF(c *fiber.Ctx) error {
	report, err := h.uc.MonthlyReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.renderer.RenderMonthlyReport(*report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-mensal.pdf"`)
	return c.Send(pdf)
}

// Details godoc
// @Summary      Detalle de producción
// @Description  Ledger separado en pendientes y finalizadas, empleados con su conteo diario y clientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DetailsDTO
// @Router       /api/dashboard/details [get]
func (h *DashboardHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stream godoc
// @Summary      Resumen del panel en vivo (SSE)
// @Description  Emite un evento "summary" por segundo hasta que el cliente se desconecta.
// @Tags         dashboard
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/stream [get]
func (h *DashboardHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	base := h.base
	if base == nil {
		base = context.Background()
	}
	user := GetEmployeeName(c)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(base)
		defer cancel()

		r := appanalytics.NewRefresher(h.uc, h.interval, func(s *dto.DashboardSummaryDTO) {
			if err := writeEvent(w, "summary", s); err != nil {
				// cliente desconectado
				cancel()
			}
		}, h.log)
		r.Start(ctx)
		h.log.Debug().Str("employee", user).Msg("stream del panel abierto")
		<-r.Done()
		h.log.Debug().Str("employee", user).Msg("stream del panel cerrado")
	}))
	return nil
}

func writeEvent(w *bufio.Writer, event string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}
