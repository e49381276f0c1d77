package repository

import "github.com/ruxshona/bakery-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	// List devuelve todos los gastos ordenados por fecha descendente
	// (y creación descendente como desempate).
	List() ([]*entity.Expense, error)
	Delete(id string) error
}
