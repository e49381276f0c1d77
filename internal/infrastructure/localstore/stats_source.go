package localstore

import (
	"context"
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.StatsSource = (*StatsSource)(nil)

const marketingRankLimit = 10

// Registros auxiliares de los que los rollups solo necesitan el conteo.
type workerRecord struct {
	ID   string
	Name string
}

type branchRecord struct {
	ID   string
	Name string
}

type shopRecord struct {
	ID   string
	Name string
}

// StatsSource materializa las colecciones para los rollups desde los archivos
// JSON. A diferencia del modo PostgreSQL, los rankings de marketing se calculan
// en memoria: las colecciones ya están cargadas de todos modos.
type StatsSource struct {
	s *Store
}

func NewStatsSource(s *Store) *StatsSource {
	return &StatsSource{s: s}
}

// Snapshot carga el estado actual de todas las colecciones que consumen los rollups.
func (src *StatsSource) Snapshot(_ context.Context) (*repository.Snapshot, error) {
	src.s.mu.Lock()
	defer src.s.mu.Unlock()

	snap := &repository.Snapshot{}
	var err error
	if snap.Products, err = load[*entity.Product](src.s, fileProducts); err != nil {
		return nil, err
	}
	if snap.Categories, err = load[*entity.Category](src.s, fileCategories); err != nil {
		return nil, err
	}
	if snap.Expenses, err = load[*entity.Expense](src.s, fileExpenses); err != nil {
		return nil, err
	}
	if snap.Sales, err = load[*entity.Sale](src.s, fileSales); err != nil {
		return nil, err
	}
	if snap.Returns, err = load[*entity.Return](src.s, fileReturns); err != nil {
		return nil, err
	}
	if snap.BranchStocks, err = load[*entity.BranchStock](src.s, fileBranchStocks); err != nil {
		return nil, err
	}

	workers, err := load[workerRecord](src.s, fileWorkers)
	if err != nil {
		return nil, err
	}
	branches, err := load[branchRecord](src.s, fileBranches)
	if err != nil {
		return nil, err
	}
	shops, err := load[shopRecord](src.s, fileShops)
	if err != nil {
		return nil, err
	}
	snap.WorkersCount = len(workers)
	snap.BranchCount = len(branches)
	snap.ShopCount = len(shops)
	return snap, nil
}

// Marketing arma los datos crudos del dashboard de marketing plegando las
// colecciones en memoria. Las ventanas recientes se anclan a today:
// [today-6, today] para pedidos y [today-29, today] para clientes nuevos.
func (src *StatsSource) Marketing(_ context.Context, today string) (*repository.MarketingData, error) {
	src.s.mu.Lock()
	defer src.s.mu.Unlock()

	orders, err := load[*entity.Order](src.s, fileOrders)
	if err != nil {
		return nil, err
	}
	sales, err := load[*entity.Sale](src.s, fileSales)
	if err != nil {
		return nil, err
	}
	products, err := load[*entity.Product](src.s, fileProducts)
	if err != nil {
		return nil, err
	}
	coupons, err := load[*entity.Coupon](src.s, fileCoupons)
	if err != nil {
		return nil, err
	}

	from7 := report.DaysBefore(today, 6)
	from30 := report.DaysBefore(today, 29)

	data := &repository.MarketingData{TotalOrders: len(orders)}
	customers := make(map[string]struct{})
	for _, o := range orders {
		switch o.Status {
		case entity.OrderNew:
			data.NewOrders++
		case entity.OrderInDelivery:
			data.InDeliveryOrders++
		case entity.OrderDelivered:
			data.DeliveredOrders++
			data.TotalSales += o.Total
		case entity.OrderCanceled:
			data.CanceledOrders++
		}
		day := o.CreatedAt.Format("2006-01-02")
		if day >= from7 {
			data.RecentOrders++
		}
		if day >= from30 && o.Phone != "" {
			customers[o.Phone] = struct{}{}
		}
	}
	data.NewCustomers = len(customers)

	data.TopProducts = topProducts(sales, products)
	data.CouponStats = couponStats(coupons)
	return data, nil
}

// topProducts agrega las ventas por nombre de producto y devuelve el top por
// cantidad descendente.
func topProducts(sales []*entity.Sale, products []*entity.Product) []repository.TopProduct {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	totals := make(map[string]int64)
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			continue
		}
		totals[name] += s.Quantity
	}

	out := make([]repository.TopProduct, 0, len(totals))
	for name, qty := range totals {
		out = append(out, repository.TopProduct{Name: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > marketingRankLimit {
		out = out[:marketingRankLimit]
	}
	return out
}

// couponStats devuelve los cupones usados al menos una vez, por usos descendente.
func couponStats(coupons []*entity.Coupon) []repository.CouponUsage {
	var out []repository.CouponUsage
	for _, c := range coupons {
		if c.UsedCount > 0 {
			out = append(out, repository.CouponUsage{Code: c.Code, UsedCount: c.UsedCount, Discount: c.Discount})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UsedCount != out[j].UsedCount {
			return out[i].UsedCount > out[j].UsedCount
		}
		return out[i].Code < out[j].Code
	})
	if len(out) > marketingRankLimit {
		out = out[:marketingRankLimit]
	}
	return out
}
