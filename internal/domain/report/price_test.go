package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
)

func ptr(v int64) *int64 { return &v }

func TestPriceForProduct_PrefiereSalePrice(t *testing.T) {
	p := &entity.Product{Price: ptr(180000), SalePrice: ptr(150000)}
	assert.Equal(t, int64(150000), report.PriceForProduct(p),
		"con ambos precios definidos gana el precio de venta")
}

func TestPriceForProduct_CaeAPrecioBase(t *testing.T) {
	p := &entity.Product{Price: ptr(68000)}
	assert.Equal(t, int64(68000), report.PriceForProduct(p))
}

func TestPriceForProduct_SinPrecioValeCero(t *testing.T) {
	assert.Equal(t, int64(0), report.PriceForProduct(&entity.Product{}))
	assert.Equal(t, int64(0), report.PriceForProduct(nil),
		"una referencia colgante vale 0, nunca es error")
}

func TestBranchStockValue_ProductoEmbebidoOIndice(t *testing.T) {
	idx := report.ProductIndex([]*entity.Product{
		{ID: "p1", Price: ptr(1000)},
	})
	stocks := []*entity.BranchStock{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 5, Product: &entity.Product{ID: "p2", SalePrice: ptr(200)}},
		{ProductID: "desconocido", Quantity: 7},
	}

	// 3*1000 por índice + 5*200 por producto embebido + 0 por la referencia colgante
	assert.Equal(t, int64(4000), report.BranchStockValue(stocks, idx))
}

func TestReturnsValue_SoloAprobadas(t *testing.T) {
	idx := report.ProductIndex([]*entity.Product{
		{ID: "p1", Price: ptr(1000), SalePrice: ptr(900)},
	})
	returns := []*entity.Return{
		{Status: entity.ReturnApproved, Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 2}}},
		{Status: entity.ReturnPending, Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 10}}},
		{Status: entity.ReturnRejected, Items: []entity.ReturnItem{{ProductID: "p1", Quantity: 10}}},
	}

	assert.Equal(t, int64(1800), report.ReturnsValue(returns, idx),
		"solo las devoluciones APPROVED aportan valor, al precio de venta")
}
