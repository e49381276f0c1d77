package postgres

import (
	"context"
	"fmt"

	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/report"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.StatsSource = (*StatsSource)(nil)

// StatsSource materializa las colecciones para los rollups desde PostgreSQL.
// Snapshot carga todo en memoria en una pasada; los rankings de marketing se
// resuelven en SQL (ORDER BY + LIMIT) para no traer las colecciones enteras.
type StatsSource struct {
	q Querier
}

func NewStatsSource(q Querier) *StatsSource {
	return &StatsSource{q: q}
}

// Snapshot carga el estado actual de todas las colecciones que consumen los rollups.
func (s *StatsSource) Snapshot(ctx context.Context) (*repository.Snapshot, error) {
	snap := &repository.Snapshot{}
	var err error

	if snap.Products, err = s.loadProducts(ctx); err != nil {
		return nil, err
	}
	if snap.Categories, err = s.loadCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Expenses, err = s.loadExpenses(ctx); err != nil {
		return nil, err
	}
	if snap.Sales, err = s.loadSales(ctx); err != nil {
		return nil, err
	}
	if snap.Returns, err = s.loadReturns(ctx); err != nil {
		return nil, err
	}
	if snap.BranchStocks, err = s.loadBranchStocks(ctx); err != nil {
		return nil, err
	}

	counts := `
		SELECT
			(SELECT COUNT(*) FROM workers),
			(SELECT COUNT(*) FROM branches),
			(SELECT COUNT(*) FROM shops)`
	if err := s.q.QueryRow(ctx, counts).Scan(&snap.WorkersCount, &snap.BranchCount, &snap.ShopCount); err != nil {
		return nil, fmt.Errorf("snapshot counts: %w", err)
	}
	return snap, nil
}

// Marketing arma los datos crudos del dashboard de marketing.
// Los contadores "recientes" se acotan con fechas derivadas de today:
// [today-6, today] para pedidos recientes y [today-29, today] para clientes nuevos.
func (s *StatsSource) Marketing(ctx context.Context, today string) (*repository.MarketingData, error) {
	data := &repository.MarketingData{}

	pipeline := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total) FILTER (WHERE status = 'DELIVERED'), 0),
			COUNT(*) FILTER (WHERE status = 'NEW'),
			COUNT(*) FILTER (WHERE status = 'IN_DELIVERY'),
			COUNT(*) FILTER (WHERE status = 'DELIVERED'),
			COUNT(*) FILTER (WHERE status = 'CANCELED'),
			COUNT(*) FILTER (WHERE to_char(created_at, 'YYYY-MM-DD') >= $1),
			COUNT(DISTINCT phone) FILTER (WHERE to_char(created_at, 'YYYY-MM-DD') >= $2)
		FROM orders`
	err := s.q.QueryRow(ctx, pipeline, report.DaysBefore(today, 6), report.DaysBefore(today, 29)).Scan(
		&data.TotalOrders, &data.TotalSales, &data.NewOrders, &data.InDeliveryOrders,
		&data.DeliveredOrders, &data.CanceledOrders, &data.RecentOrders, &data.NewCustomers,
	)
	if err != nil {
		return nil, fmt.Errorf("marketing pipeline: %w", err)
	}

	top := `
		SELECT p.name, SUM(s.quantity) AS q
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.name
		ORDER BY q DESC
		LIMIT 10`
	rows, err := s.q.Query(ctx, top)
	if err != nil {
		return nil, fmt.Errorf("marketing top products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tp repository.TopProduct
		if err := rows.Scan(&tp.Name, &tp.Quantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		data.TopProducts = append(data.TopProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	coupons := `
		SELECT code, used_count, discount
		FROM coupons
		WHERE used_count > 0
		ORDER BY used_count DESC
		LIMIT 10`
	crows, err := s.q.Query(ctx, coupons)
	if err != nil {
		return nil, fmt.Errorf("marketing coupons: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var cu repository.CouponUsage
		if err := crows.Scan(&cu.Code, &cu.UsedCount, &cu.Discount); err != nil {
			return nil, fmt.Errorf("scan coupon usage: %w", err)
		}
		data.CouponStats = append(data.CouponStats, cu)
	}
	return data, crows.Err()
}

func (s *StatsSource) loadProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := s.q.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (s *StatsSource) loadCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := s.q.Query(ctx, `SELECT id, kind, name, created_at, updated_at FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("snapshot categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Kind, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (s *StatsSource) loadExpenses(ctx context.Context) ([]*entity.Expense, error) {
	rows, err := s.q.Query(ctx, `SELECT id, date, category_id, amount, payment_method, note, created_at, updated_at FROM expenses`)
	if err != nil {
		return nil, fmt.Errorf("snapshot expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.CategoryID, &e.Amount, &e.PaymentMethod, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (s *StatsSource) loadSales(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := s.q.Query(ctx, `SELECT id, date, product_id, quantity, price FROM sales`)
	if err != nil {
		return nil, fmt.Errorf("snapshot sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var sale entity.Sale
		if err := rows.Scan(&sale.ID, &sale.Date, &sale.ProductID, &sale.Quantity, &sale.Price); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &sale)
	}
	return list, rows.Err()
}

// loadReturns trae devoluciones con sus líneas. El join puede repetir la
// cabecera; se agrupa por ID preservando el orden de llegada.
func (s *StatsSource) loadReturns(ctx context.Context) ([]*entity.Return, error) {
	query := `
		SELECT r.id, r.date, r.status, i.product_id, i.quantity
		FROM returns r
		LEFT JOIN return_items i ON i.return_id = r.id
		ORDER BY r.id`
	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot returns: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.Return)
	var list []*entity.Return
	for rows.Next() {
		var (
			id, date, status string
			productID        *string
			quantity         *int64
		)
		if err := rows.Scan(&id, &date, &status, &productID, &quantity); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		ret, ok := byID[id]
		if !ok {
			ret = &entity.Return{ID: id, Date: date, Status: status}
			byID[id] = ret
			list = append(list, ret)
		}
		if productID != nil && quantity != nil {
			ret.Items = append(ret.Items, entity.ReturnItem{ProductID: *productID, Quantity: *quantity})
		}
	}
	return list, rows.Err()
}

func (s *StatsSource) loadBranchStocks(ctx context.Context) ([]*entity.BranchStock, error) {
	rows, err := s.q.Query(ctx, `SELECT id, branch_id, product_id, quantity FROM branch_stocks`)
	if err != nil {
		return nil, fmt.Errorf("snapshot branch stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.BranchStock
	for rows.Next() {
		var bs entity.BranchStock
		if err := rows.Scan(&bs.ID, &bs.BranchID, &bs.ProductID, &bs.Quantity); err != nil {
			return nil, fmt.Errorf("scan branch stock: %w", err)
		}
		list = append(list, &bs)
	}
	return list, rows.Err()
}
