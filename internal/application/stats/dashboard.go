package stats

import (
	"context"
	"sort"

	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

const recentExpensesLimit = 6 // filas del widget de últimos gastos

// DashboardUseCase resume el gasto en las tres ventanas ancladas a "hoy" y la
// partición vigente/archivado del catálogo. "Hoy" llega inyectado por el
// llamador: el rollup no lee el reloj, así que es puro y testeable.
type DashboardUseCase struct {
	source repository.StatsSource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source repository.StatsSource) *DashboardUseCase {
	return &DashboardUseCase{source: source}
}

// Summary materializa el snapshot y calcula el resumen para la fecha ancla dada.
func (uc *DashboardUseCase) Summary(ctx context.Context, today string) (*dto.DashboardSummary, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := BuildDashboard(snap, today)
	return &out, nil
}

// BuildDashboard pliega el snapshot en el resumen del dashboard. Ventanas,
// todas inclusivas: [hoy, hoy], [hoy-6, hoy] (7 días contando hoy) y
// [hoy-29, hoy] (30 días contando hoy).
func BuildDashboard(snap *repository.Snapshot, today string) dto.DashboardSummary {
	from7 := report.DaysBefore(today, 6)
	from30 := report.DaysBefore(today, 29)

	sumWindow := func(rng report.DateRange) int64 {
		var total int64
		for _, e := range report.FilterByDate(snap.Expenses, rng) {
			total += e.Amount
		}
		return total
	}

	var active, archived int
	for _, p := range snap.Products {
		if p.Active {
			active++
		} else {
			archived++
		}
	}

	return dto.DashboardSummary{
		Today:            today,
		TodayTotal:       sumWindow(report.DateRange{From: today, To: today}),
		Last7Total:       sumWindow(report.DateRange{From: from7, To: today}),
		Last30Total:      sumWindow(report.DateRange{From: from30, To: today}),
		ActiveProducts:   active,
		ArchivedProducts: archived,
		RecentExpenses:   recentExpenses(snap.Expenses, snap.Categories),
	}
}

// recentExpenses devuelve los últimos gastos por fecha descendente con el
// nombre de categoría resuelto; una referencia colgante se muestra como "—".
func recentExpenses(expenses []*entity.Expense, categories []*entity.Category) []dto.RecentExpense {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	sorted := make([]*entity.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentExpensesLimit {
		sorted = sorted[:recentExpensesLimit]
	}

	out := make([]dto.RecentExpense, 0, len(sorted))
	for _, e := range sorted {
		name, ok := names[e.CategoryID]
		if !ok {
			name = "—"
		}
		out = append(out, dto.RecentExpense{
			ID:            e.ID,
			Date:          e.Date,
			CategoryName:  name,
			Amount:        e.Amount,
			PaymentMethod: e.PaymentMethod,
			Note:          e.Note,
		})
	}
	return out
}
