package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildOverview: el rollup escalar del resumen general. La función es
// pura; el mismo snapshot y rango producen siempre el mismo resultado.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildOverview_SnapshotVacio_TodoEnCero(t *testing.T) {
	out := stats.BuildOverview(&repository.Snapshot{}, report.DateRange{})

	assert.Zero(t, out.ProductsCount)
	assert.Zero(t, out.CategoriesCount)
	assert.Zero(t, out.ExpensesCount)
	assert.Zero(t, out.Revenue)
	assert.Zero(t, out.Returns)
	assert.Zero(t, out.ExpensesTotal)
	assert.Zero(t, out.NetProfit, "colecciones vacías dan cero, nunca error")
	assert.Zero(t, out.BranchValue)
}

func TestBuildOverview_VentanaCompartida(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1", Price: ptr(1000)},
		},
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-10", Amount: 500},
			{ID: "e2", Date: "2025-04-10", Amount: 9999}, // fuera de rango
		},
		Sales: []*entity.Sale{
			{ID: "s1", Date: "2025-03-15", ProductID: "p1", Quantity: 3, Price: 1000},
			{ID: "s2", Date: "2025-02-01", ProductID: "p1", Quantity: 100, Price: 1000}, // fuera
		},
		Returns: []*entity.Return{
			{ID: "r1", Date: "2025-03-20", Status: entity.ReturnApproved,
				Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 2}}},
			{ID: "r2", Date: "2025-05-20", Status: entity.ReturnApproved,
				Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 50}}}, // fuera
		},
	}
	rng := report.DateRange{From: "2025-03-01", To: "2025-03-31"}

	out := stats.BuildOverview(snap, rng)

	assert.Equal(t, int64(3000), out.Revenue, "ingreso = precio*cantidad de las ventas en rango")
	assert.Equal(t, int64(500), out.ExpensesTotal)
	assert.Equal(t, int64(2000), out.Returns, "devoluciones valoradas al precio resuelto")
	assert.Equal(t, int64(2500), out.NetProfit,
		"beneficio neto = ingreso - gastos; las devoluciones NO se restan")
	assert.Equal(t, int64(3000), out.Received, "recibido refleja el ingreso del período")
	assert.Equal(t, 1, out.ExpensesCount, "el conteo de gastos respeta la ventana")
}

func TestBuildOverview_SalePricePrevaleceEnDevoluciones(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1", Price: ptr(2000), SalePrice: ptr(1000)},
		},
		Returns: []*entity.Return{
			{ID: "r1", Date: "2025-03-10", Status: entity.ReturnApproved,
				Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 2}}},
		},
	}

	out := stats.BuildOverview(snap, report.DateRange{})
	assert.Equal(t, int64(2000), out.Returns, "2 unidades al precio de venta de 1000")
}

func TestBuildOverview_BranchValueIgnoraElRango(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1", Price: ptr(1000)},
		},
		BranchStocks: []*entity.BranchStock{
			{ID: "bs1", ProductID: "p1", Quantity: 4},
		},
	}
	// Rango imposible: nada cae dentro, pero las existencias valen igual.
	rng := report.DateRange{From: "2099-01-01", To: "2099-01-02"}

	out := stats.BuildOverview(snap, rng)
	assert.Equal(t, int64(4000), out.BranchValue,
		"el valor de existencias es presente, no depende del rango consultado")
}

func TestBuildOverview_ConteosSobreColeccionesCompletas(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1"}, {ID: "p2"},
		},
		Categories: []*entity.Category{
			{ID: "c1", Kind: entity.CategoryProduct},
			{ID: "c2", Kind: entity.CategoryExpense},
		},
		WorkersCount: 5,
		BranchCount:  2,
		ShopCount:    3,
	}

	out := stats.BuildOverview(snap, report.DateRange{From: "2099-01-01", To: "2099-01-02"})

	assert.Equal(t, 2, out.ProductsCount, "el catálogo se cuenta completo, sin filtro")
	assert.Equal(t, 2, out.CategoriesCount)
	assert.Equal(t, 5, out.WorkersCount)
	assert.Equal(t, 5, out.BranchShopCount, "sucursales + tiendas")
}

func TestBuildOverview_Idempotente(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{{ID: "p1", Price: ptr(100)}},
		Sales: []*entity.Sale{
			{ID: "s1", Date: "2025-03-01", ProductID: "p1", Quantity: 1, Price: 100},
		},
	}
	rng := report.DateRange{From: "2025-03-01", To: "2025-03-31"}

	first := stats.BuildOverview(snap, rng)
	second := stats.BuildOverview(snap, rng)

	assert.Equal(t, first, second, "el mismo snapshot y rango siempre dan el mismo rollup")
}
