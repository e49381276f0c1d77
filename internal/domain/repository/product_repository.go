package repository

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve el catálogo completo ordenado por fecha de creación descendente.
	List() ([]*entity.Product, error)
	Delete(id string) error
}
