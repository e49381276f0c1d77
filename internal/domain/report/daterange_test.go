package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests DateRange: los extremos son siempre inclusivos y la comparación es
// léxica sobre el formato ISO, así que el orden coincide con el cronológico.
// ──────────────────────────────────────────────────────────────────────────────

func TestDateRange_ExtremosInclusivos(t *testing.T) {
	rng := report.DateRange{From: "2025-03-01", To: "2025-03-31"}

	assert.True(t, rng.Contains("2025-03-01"), "la fecha inicial pertenece al rango")
	assert.True(t, rng.Contains("2025-03-31"), "la fecha final pertenece al rango")
	assert.True(t, rng.Contains("2025-03-15"))
	assert.False(t, rng.Contains("2025-02-28"), "un día antes del rango queda fuera")
	assert.False(t, rng.Contains("2025-04-01"), "un día después del rango queda fuera")
}

func TestDateRange_ExtremoVacioNoAcota(t *testing.T) {
	soloDesde := report.DateRange{From: "2025-03-01"}
	assert.True(t, soloDesde.Contains("2099-12-31"), "sin To no hay límite superior")
	assert.False(t, soloDesde.Contains("2025-02-28"))

	soloHasta := report.DateRange{To: "2025-03-31"}
	assert.True(t, soloHasta.Contains("1970-01-01"), "sin From no hay límite inferior")
	assert.False(t, soloHasta.Contains("2025-04-01"))
}

func TestFilterByDate_RangoVacioDevuelveEntrada(t *testing.T) {
	expenses := []*entity.Expense{
		{ID: "e1", Date: "2025-03-01"},
		{ID: "e2", Date: "2025-03-02"},
	}

	out := report.FilterByDate(expenses, report.DateRange{})
	assert.Len(t, out, 2, "un rango sin extremos no filtra nada")
}

func TestFilterByDate_FromMayorQueTo_ResultadoVacio(t *testing.T) {
	expenses := []*entity.Expense{
		{ID: "e1", Date: "2025-03-15"},
	}

	out := report.FilterByDate(expenses, report.DateRange{From: "2025-04-01", To: "2025-03-01"})
	assert.Empty(t, out, "con From > To ninguna fecha satisface ambos extremos")
}

func TestFilterByDate_NoMutaLaEntrada(t *testing.T) {
	expenses := []*entity.Expense{
		{ID: "e1", Date: "2025-03-01"},
		{ID: "e2", Date: "2025-05-01"},
	}

	_ = report.FilterByDate(expenses, report.DateRange{From: "2025-03-01", To: "2025-03-31"})

	assert.Len(t, expenses, 2, "el filtrado nunca muta la colección de entrada")
	assert.Equal(t, "e1", expenses[0].ID)
	assert.Equal(t, "e2", expenses[1].ID)
}

func TestFilterByDate_MismoRangoParaVariasColecciones(t *testing.T) {
	rng := report.DateRange{From: "2025-03-01", To: "2025-03-31"}

	expenses := []*entity.Expense{
		{ID: "e1", Date: "2025-03-10"},
		{ID: "e2", Date: "2025-04-10"},
	}
	sales := []*entity.Sale{
		{ID: "s1", Date: "2025-03-10"},
		{ID: "s2", Date: "2025-02-10"},
	}

	assert.Len(t, report.FilterByDate(expenses, rng), 1)
	assert.Len(t, report.FilterByDate(sales, rng), 1)
}

func TestDaysBefore(t *testing.T) {
	assert.Equal(t, "2025-03-09", report.DaysBefore("2025-03-15", 6))
	assert.Equal(t, "2025-02-14", report.DaysBefore("2025-03-15", 29))
	assert.Equal(t, "2024-12-31", report.DaysBefore("2025-01-01", 1), "debe cruzar el año")
	assert.Equal(t, "no-es-fecha", report.DaysBefore("no-es-fecha", 6),
		"una fecha que no parsea se devuelve tal cual")
}
