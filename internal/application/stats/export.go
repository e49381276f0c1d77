package stats

import (
	"context"
	"time"

	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ExportUseCase serializa colecciones filtradas como CSV descargable.
// El disparo de la descarga (headers HTTP) queda fuera; aquí solo se produce
// el blob de texto exacto.
type ExportUseCase struct {
	source repository.StatsSource
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(source repository.StatsSource) *ExportUseCase {
	return &ExportUseCase{source: source}
}

// ExpensesCSV exporta los gastos del rango con el nombre de categoría resuelto
// (vacío si la referencia cuelga). Columnas fijas del reporte histórico.
func (uc *ExportUseCase) ExpensesCSV(ctx context.Context, rng report.DateRange) (string, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return BuildExpensesCSV(snap, rng), nil
}

// BuildExpensesCSV pliega el snapshot en el CSV de gastos. Función pura.
func BuildExpensesCSV(snap *repository.Snapshot, rng report.DateRange) string {
	names := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[c.ID] = c.Name
	}
	expenses := report.FilterByDate(snap.Expenses, rng)

	headers := []string{"Date", "Category", "Payment", "Amount_UZS", "Note"}
	rows := make([][]interface{}, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []interface{}{
			e.Date,
			names[e.CategoryID], // "" si la categoría ya no existe
			e.PaymentMethod,
			e.Amount,
			e.Note,
		})
	}
	return report.BuildCSV(headers, rows)
}

// ProductsCSV exporta el catálogo completo.
func (uc *ExportUseCase) ProductsCSV(ctx context.Context) (string, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return BuildProductsCSV(snap), nil
}

// BuildProductsCSV pliega el catálogo en CSV. Función pura.
func BuildProductsCSV(snap *repository.Snapshot) string {
	headers := []string{"Name", "Type", "Price_UZS", "Active"}
	rows := make([][]interface{}, 0, len(snap.Products))
	for _, p := range snap.Products {
		var price interface{}
		if p.Price != nil {
			price = *p.Price
		}
		rows = append(rows, []interface{}{p.Name, p.Type, price, p.Active})
	}
	return report.BuildCSV(headers, rows)
}

// FileStamp devuelve la fecha de hoy "YYYY-MM-DD" para nombres de archivo
// (ruxshona-expenses-2026-08-30.csv).
func FileStamp(now time.Time) string {
	return now.Format("2006-01-02")
}
