package stats

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

const minBarWidth = 8 // % mínimo: la barra más pequeña del ranking sigue visible

var hundred = decimal.NewFromInt(100)

// MarketingUseCase decora los datos crudos del dashboard de marketing con los
// valores derivados de presentación numérica: anchos de barra relativos y
// ticket promedio. El ranking en sí lo aporta la fuente ya ordenado.
type MarketingUseCase struct {
	source repository.StatsSource
}

// NewMarketingUseCase construye el caso de uso.
func NewMarketingUseCase(source repository.StatsSource) *MarketingUseCase {
	return &MarketingUseCase{source: source}
}

// Summary obtiene los datos crudos y construye la respuesta del dashboard.
func (uc *MarketingUseCase) Summary(ctx context.Context, today string) (*dto.MarketingStats, error) {
	data, err := uc.source.Marketing(ctx, today)
	if err != nil {
		return nil, err
	}
	out := BuildMarketing(data)
	return &out, nil
}

// BuildMarketing pliega los datos crudos en el DTO. Función pura.
func BuildMarketing(data *repository.MarketingData) dto.MarketingStats {
	var maxQty, maxUse int64
	for _, p := range data.TopProducts {
		if p.Quantity > maxQty {
			maxQty = p.Quantity
		}
	}
	for _, c := range data.CouponStats {
		if c.UsedCount > maxUse {
			maxUse = c.UsedCount
		}
	}

	products := make([]dto.TopProductStat, 0, len(data.TopProducts))
	for _, p := range data.TopProducts {
		products = append(products, dto.TopProductStat{
			Name:         p.Name,
			Quantity:     p.Quantity,
			WidthPercent: BarWidth(p.Quantity, maxQty),
		})
	}
	coupons := make([]dto.CouponStat, 0, len(data.CouponStats))
	for _, c := range data.CouponStats {
		coupons = append(coupons, dto.CouponStat{
			Code:         c.Code,
			UsedCount:    c.UsedCount,
			Discount:     c.Discount,
			WidthPercent: BarWidth(c.UsedCount, maxUse),
		})
	}

	return dto.MarketingStats{
		TotalOrders:      data.TotalOrders,
		TotalSales:       data.TotalSales,
		AverageCheck:     AverageCheck(data.TotalSales, data.DeliveredOrders, data.TotalOrders),
		NewCustomers:     data.NewCustomers,
		NewOrders:        data.NewOrders,
		InDeliveryOrders: data.InDeliveryOrders,
		DeliveredOrders:  data.DeliveredOrders,
		CanceledOrders:   data.CanceledOrders,
		RecentOrders:     data.RecentOrders,
		TopProducts:      products,
		CouponStats:      coupons,
	}
}

// BarWidth calcula el ancho relativo de una barra del ranking:
// max(8, round(value/max*100)). El piso de 8 garantiza que el elemento más
// chico siga visible; con lista vacía o todo-cero el divisor cae a 1 para no
// dividir por cero.
func BarWidth(value, max int64) int64 {
	if max <= 0 {
		max = 1
	}
	pct := decimal.NewFromInt(value).
		Div(decimal.NewFromInt(max)).
		Mul(hundred).
		Round(0).
		IntPart()
	if pct < minBarWidth {
		return minBarWidth
	}
	return pct
}

// AverageCheck calcula el ticket promedio: prefiere los pedidos entregados
// como denominador, cae al total de pedidos y por último a 1 (nunca divide
// por cero). Redondeo a entero más cercano.
func AverageCheck(totalSales int64, delivered, total int) int64 {
	denom := int64(delivered)
	if denom == 0 {
		denom = int64(total)
	}
	if denom == 0 {
		denom = 1
	}
	return decimal.NewFromInt(totalSales).
		Div(decimal.NewFromInt(denom)).
		Round(0).
		IntPart()
}
