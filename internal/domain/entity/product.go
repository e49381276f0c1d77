package entity

import "time"

// Tipos de producto del catálogo.
const (
	TypeProduct    = "PRODUCT"    // producto terminado (tortas, pasteles)
	TypeIngredient = "INGREDIENT" // materia prima
	TypeDecor      = "DECOR"      // decoración
	TypeUtility    = "UTILITY"    // artículos de uso interno
)

// Product artículo del catálogo. Los montos se guardan como enteros en la
// unidad mínima de moneda (so'm); Price y SalePrice son opcionales (nil = sin precio).
// Active particiona el catálogo en vigente/archivado para los conteos del dashboard.
type Product struct {
	ID         string
	Name       string
	Type       string // PRODUCT | INGREDIENT | DECOR | UTILITY
	CategoryID string
	UnitID     string
	Price      *int64
	SalePrice  *int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
