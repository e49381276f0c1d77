package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests BarWidth: max(8, round(value/max*100)); piso de 8 para que la barra
// más chica del ranking siga visible.
// ──────────────────────────────────────────────────────────────────────────────

func TestBarWidth_ProporcionRedondeada(t *testing.T) {
	assert.Equal(t, int64(100), stats.BarWidth(10, 10))
	assert.Equal(t, int64(50), stats.BarWidth(5, 10))
	assert.Equal(t, int64(33), stats.BarWidth(1, 3), "1/3 redondea a 33")
	assert.Equal(t, int64(67), stats.BarWidth(2, 3), "2/3 redondea a 67")
}

func TestBarWidth_PisoDeOcho(t *testing.T) {
	assert.Equal(t, int64(8), stats.BarWidth(0, 10), "cantidad cero queda en el piso")
	assert.Equal(t, int64(8), stats.BarWidth(1, 100), "1% sube al piso de 8")
	assert.Equal(t, int64(8), stats.BarWidth(8, 100), "exactamente 8 se queda en 8")
	assert.Equal(t, int64(9), stats.BarWidth(9, 100))
}

func TestBarWidth_MaxCeroNoDividePorCero(t *testing.T) {
	assert.Equal(t, int64(8), stats.BarWidth(0, 0))
	assert.Equal(t, int64(100), stats.BarWidth(1, 0), "con max 0 el divisor cae a 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AverageCheck. Denominador: entregados, luego total, luego 1.
// ──────────────────────────────────────────────────────────────────────────────

func TestAverageCheck_PrefiereEntregados(t *testing.T) {
	assert.Equal(t, int64(500), stats.AverageCheck(1000, 2, 10),
		"con entregados > 0 se divide entre entregados")
}

func TestAverageCheck_CaeAlTotal(t *testing.T) {
	assert.Equal(t, int64(100), stats.AverageCheck(1000, 0, 10))
}

func TestAverageCheck_NuncaDividePorCero(t *testing.T) {
	assert.Equal(t, int64(0), stats.AverageCheck(0, 0, 0))
	assert.Equal(t, int64(1000), stats.AverageCheck(1000, 0, 0), "denominador final 1")
}

func TestAverageCheck_RedondeaAlEnteroMasCercano(t *testing.T) {
	assert.Equal(t, int64(333), stats.AverageCheck(1000, 3, 3))
	assert.Equal(t, int64(667), stats.AverageCheck(2000, 3, 3))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildMarketing: los anchos se calculan contra el máximo de cada
// ranking y los contadores pasan tal cual.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildMarketing_AnchosRelativosAlMaximo(t *testing.T) {
	data := &repository.MarketingData{
		TotalOrders:     4,
		TotalSales:      400000,
		DeliveredOrders: 2,
		TopProducts: []repository.TopProduct{
			{Name: "Napoleon tort", Quantity: 10},
			{Name: "Medovik", Quantity: 5},
			{Name: "Eclair", Quantity: 0},
		},
		CouponStats: []repository.CouponUsage{
			{Code: "YANGI10", UsedCount: 4, Discount: 10000},
			{Code: "BAHOR", UsedCount: 1, Discount: 5000},
		},
	}

	out := stats.BuildMarketing(data)

	assert.Equal(t, int64(100), out.TopProducts[0].WidthPercent, "el líder del ranking ocupa 100")
	assert.Equal(t, int64(50), out.TopProducts[1].WidthPercent)
	assert.Equal(t, int64(8), out.TopProducts[2].WidthPercent, "cantidad cero queda en el piso")

	assert.Equal(t, int64(100), out.CouponStats[0].WidthPercent)
	assert.Equal(t, int64(25), out.CouponStats[1].WidthPercent)

	assert.Equal(t, int64(200000), out.AverageCheck, "400000 entre 2 entregados")
	assert.Equal(t, 4, out.TotalOrders)
}

func TestBuildMarketing_RankingsVacios(t *testing.T) {
	out := stats.BuildMarketing(&repository.MarketingData{})

	assert.Empty(t, out.TopProducts)
	assert.Empty(t, out.CouponStats)
	assert.Zero(t, out.AverageCheck)
}
