package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildDashboard: ventanas inclusivas ancladas a "hoy": [hoy, hoy],
// [hoy-6, hoy] y [hoy-29, hoy]. "Hoy" llega inyectado, así que todo es
// determinista.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildDashboard_VentanasAncladas(t *testing.T) {
	snap := &repository.Snapshot{
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-15", Amount: 100},      // hoy
			{ID: "e2", Date: "2025-03-09", Amount: 200},      // borde de la ventana de 7 días
			{ID: "e3", Date: "2025-03-08", Amount: 400},      // fuera de 7, dentro de 30
			{ID: "e4", Date: "2025-02-14", Amount: 800},      // borde de la ventana de 30 días
			{ID: "e5", Date: "2025-02-13", Amount: 1600},     // fuera de todo
			{ID: "e6", Date: "2025-03-16", Amount: 99999999}, // futuro: fuera de todas las ventanas
		},
	}

	out := stats.BuildDashboard(snap, "2025-03-15")

	assert.Equal(t, "2025-03-15", out.Today)
	assert.Equal(t, int64(100), out.TodayTotal)
	assert.Equal(t, int64(300), out.Last7Total, "7 días contando hoy: [2025-03-09, 2025-03-15]")
	assert.Equal(t, int64(1500), out.Last30Total, "30 días contando hoy: [2025-02-14, 2025-03-15]")
}

func TestBuildDashboard_ParticionDelCatalogo(t *testing.T) {
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1", Active: true},
			{ID: "p2", Active: true},
			{ID: "p3", Active: false},
		},
	}

	out := stats.BuildDashboard(snap, "2025-03-15")

	assert.Equal(t, 2, out.ActiveProducts)
	assert.Equal(t, 1, out.ArchivedProducts)
}

func TestBuildDashboard_UltimosGastosResueltos(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	snap := &repository.Snapshot{
		Categories: []*entity.Category{
			{ID: "c1", Kind: entity.CategoryExpense, Name: "Xomashyo"},
		},
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-01", CategoryID: "c1", Amount: 100, CreatedAt: base},
			{ID: "e2", Date: "2025-03-03", CategoryID: "c1", Amount: 200, CreatedAt: base},
			{ID: "e3", Date: "2025-03-02", CategoryID: "desaparecida", Amount: 300, CreatedAt: base},
		},
	}

	out := stats.BuildDashboard(snap, "2025-03-15")

	require.Len(t, out.RecentExpenses, 3)
	assert.Equal(t, "e2", out.RecentExpenses[0].ID, "orden por fecha descendente")
	assert.Equal(t, "Xomashyo", out.RecentExpenses[0].CategoryName)
	assert.Equal(t, "—", out.RecentExpenses[1].CategoryName,
		"una referencia colgante se muestra con el guion largo")
}

func TestBuildDashboard_LimiteDeSeisGastos(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	var expenses []*entity.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, &entity.Expense{
			ID: string(rune('a' + i)), Date: "2025-03-01", Amount: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	snap := &repository.Snapshot{Expenses: expenses}

	out := stats.BuildDashboard(snap, "2025-03-15")

	assert.Len(t, out.RecentExpenses, 6, "el widget muestra a lo sumo 6 gastos")
	assert.Equal(t, "j", out.RecentExpenses[0].ID,
		"a igual fecha gana el creado más recientemente")
}
