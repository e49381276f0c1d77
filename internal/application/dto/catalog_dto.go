package dto

import "time"

// ── Categorías (catálogo y gastos comparten forma) ───────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest entrada para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ── Unidades ─────────────────────────────────────────────────────────────────

// CreateUnitRequest entrada para crear una unidad de medida.
type CreateUnitRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Short string `json:"short" validate:"required,min=1,max=20"`
}

// UpdateUnitRequest entrada para actualizar una unidad.
type UpdateUnitRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Short string `json:"short" validate:"required,min=1,max=20"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Short     string    `json:"short"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
