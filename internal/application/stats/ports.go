package stats

import "context"

// ExpenseReportRow fila del reporte PDF de gastos, con la categoría ya resuelta.
type ExpenseReportRow struct {
	Date          string
	CategoryName  string // "—" si la referencia cuelga
	PaymentMethod string
	Amount        int64
	Note          string
}

// ExpenseReportData datos listos para render del reporte de gastos.
type ExpenseReportData struct {
	From  string // "" = sin límite inferior
	To    string // "" = sin límite superior
	Rows  []ExpenseReportRow
	Total int64
}

// ExpenseReportGenerator puerto del generador PDF (implementado en infrastructure/pdf).
type ExpenseReportGenerator interface {
	GenerateExpenseReport(ctx context.Context, data ExpenseReportData) ([]byte, error)
}
