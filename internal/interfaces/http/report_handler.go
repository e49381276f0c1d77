package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/application/stats"
)

// ReportHandler sirve las exportaciones descargables: CSV y PDF.
type ReportHandler struct {
	export        *stats.ExportUseCase
	expenseReport *stats.ExpenseReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(export *stats.ExportUseCase, expenseReport *stats.ExpenseReportUseCase) *ReportHandler {
	return &ReportHandler{export: export, expenseReport: expenseReport}
}

// ExpensesCSV godoc
// @Summary      Exportar gastos como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/expenses.csv [get]
func (h *ReportHandler) ExpensesCSV(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	csv, err := h.export.ExpensesCSV(c.Context(), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, "text/csv; charset=utf-8", "ruxshona-expenses-"+stats.FileStamp(time.Now())+".csv", []byte(csv))
}

// ProductsCSV godoc
// @Summary      Exportar catálogo como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/products.csv [get]
func (h *ReportHandler) ProductsCSV(c *fiber.Ctx) error {
	csv, err := h.export.ProductsCSV(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, "text/csv; charset=utf-8", "ruxshona-products-"+stats.FileStamp(time.Now())+".csv", []byte(csv))
}

// ExpensesPDF godoc
// @Summary      Reporte imprimible de gastos (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Success      200   {string}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/expenses.pdf [get]
func (h *ReportHandler) ExpensesPDF(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, err := h.expenseReport.ExpensesPDF(c.Context(), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, "application/pdf", "ruxshona-expenses-"+stats.FileStamp(time.Now())+".pdf", pdf)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
