package stats_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

func TestBuildExpensesCSV_ColumnasYResolucionDeCategoria(t *testing.T) {
	snap := &repository.Snapshot{
		Categories: []*entity.Category{
			{ID: "c1", Kind: entity.CategoryExpense, Name: "Transport"},
		},
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-01", CategoryID: "c1", Amount: 250000,
				PaymentMethod: entity.PayCash, Note: "Benzin"},
			{ID: "e2", Date: "2025-03-02", CategoryID: "colgante", Amount: 10000,
				PaymentMethod: entity.PayCard},
		},
	}

	out := stats.BuildExpensesCSV(snap, report.DateRange{})
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Date,Category,Payment,Amount_UZS,Note", lines[0])
	assert.Equal(t, "2025-03-01,Transport,CASH,250000,Benzin", lines[1])
	assert.Equal(t, "2025-03-02,,CARD,10000,", lines[2],
		"una categoría colgante se exporta como campo vacío")
}

func TestBuildExpensesCSV_RespetaElRango(t *testing.T) {
	snap := &repository.Snapshot{
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-01", Amount: 100, PaymentMethod: entity.PayCash},
			{ID: "e2", Date: "2025-04-01", Amount: 200, PaymentMethod: entity.PayCash},
		},
	}

	out := stats.BuildExpensesCSV(snap, report.DateRange{From: "2025-03-01", To: "2025-03-31"})

	assert.Contains(t, out, "2025-03-01")
	assert.NotContains(t, out, "2025-04-01")
}

func TestBuildProductsCSV_PrecioNilComoVacio(t *testing.T) {
	price := int64(180000)
	snap := &repository.Snapshot{
		Products: []*entity.Product{
			{ID: "p1", Name: "Napoleon tort", Type: entity.TypeProduct, Price: &price, Active: true},
			{ID: "p2", Name: "Sin precio", Type: entity.TypeDecor, Active: false},
		},
	}

	out := stats.BuildProductsCSV(snap)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Name,Type,Price_UZS,Active", lines[0])
	assert.Equal(t, "Napoleon tort,PRODUCT,180000,true", lines[1])
	assert.Equal(t, "Sin precio,DECOR,,false", lines[2], "sin precio el campo queda vacío")
}

func TestBuildExpenseReport_TotalYCategoriaResuelta(t *testing.T) {
	snap := &repository.Snapshot{
		Categories: []*entity.Category{
			{ID: "c1", Kind: entity.CategoryExpense, Name: "Kommunal"},
		},
		Expenses: []*entity.Expense{
			{ID: "e1", Date: "2025-03-01", CategoryID: "c1", Amount: 100000, PaymentMethod: entity.PayCash},
			{ID: "e2", Date: "2025-03-02", CategoryID: "colgante", Amount: 50000, PaymentMethod: entity.PayCard},
		},
	}

	out := stats.BuildExpenseReport(snap, report.DateRange{From: "2025-03-01", To: "2025-03-31"})

	assert.Equal(t, int64(150000), out.Total)
	assert.Len(t, out.Rows, 2)
	assert.Equal(t, "Kommunal", out.Rows[0].CategoryName)
	assert.Equal(t, "—", out.Rows[1].CategoryName,
		"en el PDF la referencia colgante se muestra con guion largo")
	assert.Equal(t, "2025-03-01", out.From)
}

func TestFileStamp(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", stats.FileStamp(now))
}
