package repository

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// List devuelve todos los pedidos ordenados por creación descendente.
	List() ([]*entity.Order, error)
}
