package entity

import "time"

// Kind distingue las dos colecciones de categorías de la pastelería.
type CategoryKind string

const (
	CategoryProduct CategoryKind = "PRODUCT" // categorías del catálogo
	CategoryExpense CategoryKind = "EXPENSE" // categorías de gastos
)

// Category categoría de productos o de gastos. Name es único dentro de su colección.
type Category struct {
	ID        string
	Kind      CategoryKind
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
