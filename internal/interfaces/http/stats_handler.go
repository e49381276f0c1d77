package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/domain/report"
)

// StatsHandler maneja los rollups de lectura: overview, dashboard y marketing.
type StatsHandler struct {
	overview  *stats.OverviewUseCase
	dashboard *stats.DashboardUseCase
	marketing *stats.MarketingUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(overview *stats.OverviewUseCase, dashboard *stats.DashboardUseCase, marketing *stats.MarketingUseCase) *StatsHandler {
	return &StatsHandler{overview: overview, dashboard: dashboard, marketing: marketing}
}

// Overview godoc
// @Summary      Resumen financiero del período
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Success      200   {object}  dto.StatsOverview
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stats/overview [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.overview.Overview(c.Context(), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del dashboard (ventanas ancladas a hoy)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        today  query  string  false  "Fecha ancla YYYY-MM-DD; por defecto la fecha del servidor"
// @Success      200    {object}  dto.DashboardSummary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	today := c.Query("today")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	} else if !validDate(today) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "today debe ser YYYY-MM-DD"})
	}
	out, err := h.dashboard.Summary(c.Context(), today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Marketing godoc
// @Summary      Dashboard de marketing (pipeline de pedidos y rankings)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MarketingStats
// @Router       /api/analytics/marketing [get]
func (h *StatsHandler) Marketing(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	out, err := h.marketing.Summary(c.Context(), today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseRange arma el rango inclusivo desde los query params from/to.
// Extremos ausentes no acotan; con from > to el resultado será vacío, no error.
func parseRange(c *fiber.Ctx) (report.DateRange, error) {
	rng := report.DateRange{From: c.Query("from"), To: c.Query("to")}
	if rng.From != "" && !validDate(rng.From) {
		return report.DateRange{}, fmt.Errorf("from debe ser YYYY-MM-DD")
	}
	if rng.To != "" && !validDate(rng.To) {
		return report.DateRange{}, fmt.Errorf("to debe ser YYYY-MM-DD")
	}
	return rng, nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
