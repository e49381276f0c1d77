package report

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// PriceForProduct resuelve el precio a usar en valoraciones: prefiere
// SalePrice sobre Price y cae a 0 si el producto no existe o no tiene precio.
// Una referencia colgante nunca es un error en los rollups; vale 0.
func PriceForProduct(p *entity.Product) int64 {
	if p == nil {
		return 0
	}
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	if p.Price != nil {
		return *p.Price
	}
	return 0
}

// ProductIndex construye el índice id -> producto que usan los joins de los
// rollups. Se reconstruye en cada refresh y se descarta; no hay caché entre llamadas.
func ProductIndex(products []*entity.Product) map[string]*entity.Product {
	idx := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// BranchStockValue suma el valor actual de las existencias: precio resuelto por
// producto embebido o por el índice, multiplicado por la cantidad en mano.
// No se filtra por fecha: es el valor presente, independiente del rango consultado.
func BranchStockValue(stocks []*entity.BranchStock, idx map[string]*entity.Product) int64 {
	var total int64
	for _, s := range stocks {
		prod := s.Product
		if prod == nil {
			prod = idx[s.ProductID]
		}
		total += PriceForProduct(prod) * s.Quantity
	}
	return total
}

// ReturnsValue suma el valor de las devoluciones APROBADAS: las pendientes y
// rechazadas aportan cero. Cada línea vale precio_resuelto * cantidad.
func ReturnsValue(returns []*entity.Return, idx map[string]*entity.Product) int64 {
	var total int64
	for _, ret := range returns {
		if ret.Status != entity.ReturnApproved {
			continue
		}
		for _, item := range ret.Items {
			total += PriceForProduct(idx[item.ProductID]) * item.Quantity
		}
	}
	return total
}
