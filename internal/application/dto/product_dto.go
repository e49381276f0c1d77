package dto

import "time"

// CreateProductRequest entrada para crear un producto del catálogo.
// ID es opcional: el front lo envía al restaurar un respaldo.
type CreateProductRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,min=2,max=200"`
	Type       string `json:"type" validate:"required,oneof=PRODUCT INGREDIENT DECOR UTILITY"`
	CategoryID string `json:"categoryId" validate:"required"`
	UnitID     string `json:"unitId" validate:"required"`
	Price      *int64 `json:"price" validate:"omitempty,min=0"`
	SalePrice  *int64 `json:"salePrice" validate:"omitempty,min=0"`
	Active     *bool  `json:"active"`
}

// UpdateProductRequest entrada PATCH: solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=200"`
	Type       *string `json:"type" validate:"omitempty,oneof=PRODUCT INGREDIENT DECOR UTILITY"`
	CategoryID *string `json:"categoryId"`
	UnitID     *string `json:"unitId"`
	Price      *int64  `json:"price" validate:"omitempty,min=0"`
	SalePrice  *int64  `json:"salePrice" validate:"omitempty,min=0"`
	Active     *bool   `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	CategoryID string    `json:"categoryId"`
	UnitID     string    `json:"unitId"`
	Price      *int64    `json:"price,omitempty"`
	SalePrice  *int64    `json:"salePrice,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
