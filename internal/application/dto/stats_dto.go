package dto

// StatsOverview rollup escalar de GET /api/stats/overview.
// Revenue, Returns y ExpensesTotal cubren siempre la misma ventana de fechas;
// BranchValue es valor presente (sin filtro de rango) y los conteos son
// cardinalidades de las colecciones completas.
type StatsOverview struct {
	ProductsCount   int   `json:"productsCount"`
	CategoriesCount int   `json:"categoriesCount"`
	ExpensesCount   int   `json:"expensesCount"`
	BranchValue     int64 `json:"branchValue"`
	WorkersCount    int   `json:"workersCount"`
	BranchShopCount int   `json:"branchShopCount"`
	Revenue         int64 `json:"revenue"`
	Returns         int64 `json:"returns"`
	Received        int64 `json:"received"`
	ExpensesTotal   int64 `json:"expensesTotal"`
	// NetProfit = Revenue - ExpensesTotal. Las devoluciones NO se restan:
	// se reportan como cifra independiente (contrato heredado, ver DESIGN.md).
	NetProfit int64 `json:"netProfit"`
}

// DashboardSummary respuesta de GET /api/dashboard/summary: totales de gasto
// en las tres ventanas ancladas a "hoy", partición del catálogo y últimos gastos.
type DashboardSummary struct {
	Today string `json:"today"` // fecha ancla de las ventanas

	TodayTotal  int64 `json:"todayTotal"`  // ventana [hoy, hoy]
	Last7Total  int64 `json:"last7Total"`  // ventana [hoy-6, hoy]
	Last30Total int64 `json:"last30Total"` // ventana [hoy-29, hoy]

	ActiveProducts   int `json:"activeProducts"`
	ArchivedProducts int `json:"archivedProducts"`

	RecentExpenses []RecentExpense `json:"recentExpenses"` // últimos 6 por fecha desc
}

// RecentExpense gasto del widget de últimos movimientos, con el nombre de la
// categoría ya resuelto ("—" si la referencia cuelga).
type RecentExpense struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	CategoryName  string `json:"categoryName"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note,omitempty"`
}

// MarketingStats respuesta de GET /api/analytics/marketing.
type MarketingStats struct {
	TotalOrders      int   `json:"totalOrders"`
	TotalSales       int64 `json:"totalSales"`
	AverageCheck     int64 `json:"averageCheck"`
	NewCustomers     int   `json:"newCustomers"`
	NewOrders        int   `json:"newOrders"`
	InDeliveryOrders int   `json:"inDeliveryOrders"`
	DeliveredOrders  int   `json:"deliveredOrders"`
	CanceledOrders   int   `json:"canceledOrders"`
	RecentOrders     int   `json:"recentOrders"`

	TopProducts []TopProductStat `json:"topProducts"`
	CouponStats []CouponStat     `json:"couponStats"`
}

// TopProductStat producto del ranking con su ancho de barra relativo.
// WidthPercent nunca baja de 8 para que la barra más pequeña siga visible.
type TopProductStat struct {
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	WidthPercent int64  `json:"widthPercent"`
}

// CouponStat cupón del ranking con su ancho de barra relativo.
type CouponStat struct {
	Code         string `json:"code"`
	UsedCount    int64  `json:"usedCount"`
	Discount     int64  `json:"discount"`
	WidthPercent int64  `json:"widthPercent"`
}
