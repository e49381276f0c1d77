// Package stats contiene la capa de agregación: rollups escalares del
// resumen general, ventanas del dashboard, resumen de marketing y exportes.
// Toda la matemática es pura (función de snapshot + parámetros); la única
// frontera asíncrona es la obtención del snapshot desde StatsSource.
package stats

import (
	"context"

	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// OverviewUseCase genera el rollup escalar del resumen general.
type OverviewUseCase struct {
	source repository.StatsSource
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(source repository.StatsSource) *OverviewUseCase {
	return &OverviewUseCase{source: source}
}

// Overview materializa el snapshot y lo pliega para el rango dado.
func (uc *OverviewUseCase) Overview(ctx context.Context, rng report.DateRange) (*dto.StatsOverview, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := BuildOverview(snap, rng)
	return &out, nil
}

// BuildOverview pliega el snapshot en el StatsOverview. Es una función pura:
// mismo snapshot y rango producen siempre el mismo resultado, sin estado
// compartido entre llamadas. Colecciones vacías dan escalares en cero, nunca error.
//
// Revenue, Returns y ExpensesTotal comparten el mismo rango: las tres cifras
// reportadas juntas cubren la misma ventana. BranchValue es la excepción
// deliberada: valor presente de existencias, sin filtro temporal.
func BuildOverview(snap *repository.Snapshot, rng report.DateRange) dto.StatsOverview {
	idx := report.ProductIndex(snap.Products)

	expenses := report.FilterByDate(snap.Expenses, rng)
	sales := report.FilterByDate(snap.Sales, rng)
	returns := report.FilterByDate(snap.Returns, rng)

	var expensesTotal, revenue int64
	for _, e := range expenses {
		expensesTotal += e.Amount
	}
	for _, s := range sales {
		revenue += s.Price * s.Quantity
	}

	return dto.StatsOverview{
		ProductsCount:   len(snap.Products),
		CategoriesCount: len(snap.Categories),
		ExpensesCount:   len(expenses),
		BranchValue:     report.BranchStockValue(snap.BranchStocks, idx),
		WorkersCount:    snap.WorkersCount,
		BranchShopCount: snap.BranchCount + snap.ShopCount,
		Revenue:         revenue,
		Returns:         report.ReturnsValue(returns, idx),
		Received:        revenue,
		ExpensesTotal:   expensesTotal,
		// Las devoluciones no se restan del beneficio neto: se reportan aparte.
		NetProfit: revenue - expensesTotal,
	}
}
