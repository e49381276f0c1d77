package stats

import (
	"context"

	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ExpenseReportUseCase arma el reporte PDF de gastos de un período.
type ExpenseReportUseCase struct {
	source    repository.StatsSource
	generator ExpenseReportGenerator
}

// NewExpenseReportUseCase construye el caso de uso.
func NewExpenseReportUseCase(source repository.StatsSource, generator ExpenseReportGenerator) *ExpenseReportUseCase {
	return &ExpenseReportUseCase{source: source, generator: generator}
}

// ExpensesPDF genera el PDF de gastos del rango dado.
func (uc *ExpenseReportUseCase) ExpensesPDF(ctx context.Context, rng report.DateRange) ([]byte, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateExpenseReport(ctx, BuildExpenseReport(snap, rng))
}

// BuildExpenseReport pliega el snapshot en los datos del reporte. Función pura.
func BuildExpenseReport(snap *repository.Snapshot, rng report.DateRange) ExpenseReportData {
	names := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[c.ID] = c.Name
	}

	expenses := report.FilterByDate(snap.Expenses, rng)
	rows := make([]ExpenseReportRow, 0, len(expenses))
	var total int64
	for _, e := range expenses {
		name, ok := names[e.CategoryID]
		if !ok {
			name = "—"
		}
		rows = append(rows, ExpenseReportRow{
			Date:          e.Date,
			CategoryName:  name,
			PaymentMethod: e.PaymentMethod,
			Amount:        e.Amount,
			Note:          e.Note,
		})
		total += e.Amount
	}

	return ExpenseReportData{
		From:  rng.From,
		To:    rng.To,
		Rows:  rows,
		Total: total,
	}
}
