package repository

import (
	"context"

	"github.com/ruxshona/bakery-api/internal/domain/entity"
)

// Snapshot foto inmutable de las colecciones que consumen los rollups.
// La capa de agregación la lee y pliega; jamás la muta ni la conserva entre
// llamadas. Los conteos de personal y puntos de venta llegan ya resueltos
// porque ningún rollup necesita esos registros completos.
type Snapshot struct {
	Products     []*entity.Product
	Categories   []*entity.Category
	Expenses     []*entity.Expense
	Sales        []*entity.Sale
	Returns      []*entity.Return
	BranchStocks []*entity.BranchStock

	WorkersCount int
	BranchCount  int
	ShopCount    int
}

// TopProduct producto en el ranking de ventas del dashboard de marketing.
// El ranking y el límite los aplica la fuente; la capa de agregación solo
// calcula el ancho relativo de la barra.
type TopProduct struct {
	Name     string
	Quantity int64
}

// CouponUsage estadística de uso de un cupón, también pre-ordenada por la fuente.
type CouponUsage struct {
	Code      string
	UsedCount int64
	Discount  int64
}

// MarketingData datos crudos del dashboard de marketing: contadores del
// pipeline de pedidos más los rankings ya ordenados y limitados.
type MarketingData struct {
	TotalOrders      int
	TotalSales       int64 // suma de totales de pedidos entregados
	NewCustomers     int   // clientes distintos de los últimos 30 días
	NewOrders        int
	InDeliveryOrders int
	DeliveredOrders  int
	CanceledOrders   int
	RecentOrders     int // pedidos de los últimos 7 días

	TopProducts []TopProduct  // top 10 por cantidad, descendente
	CouponStats []CouponUsage // top 10 por usos, descendente
}

// StatsSource es la fuente de datos de los rollups (el colaborador externo de
// la capa de agregación). Cada llamada devuelve el estado vigente; no hay
// caché del lado del consumidor.
type StatsSource interface {
	// Snapshot materializa las colecciones actuales en memoria.
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Marketing devuelve los datos crudos del dashboard de marketing.
	// today acota los contadores "recientes" ([today-6, today] y [today-29, today]).
	Marketing(ctx context.Context, today string) (*MarketingData, error)
}
