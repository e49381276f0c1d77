package repository

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Una misma interfaz sirve a las categorías de catálogo y a las de gastos;
// Kind separa las dos colecciones.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(kind entity.CategoryKind, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve la colección completa ordenada por nombre ascendente.
	List(kind entity.CategoryKind) ([]*entity.Category, error)
	// Delete falla con domain.ErrInUse si algún producto o gasto referencia la categoría.
	Delete(id string) error
}
