package repository

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	// List devuelve todas las unidades ordenadas por nombre ascendente.
	List() ([]*entity.Unit, error)
	// Delete falla con domain.ErrInUse si algún producto usa la unidad.
	Delete(id string) error
}
