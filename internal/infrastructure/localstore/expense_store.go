package localstore

import (
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseStore)(nil)

// ExpenseStore implementación del puerto ExpenseRepository sobre archivos.
type ExpenseStore struct {
	s *Store
}

func NewExpenseStore(s *Store) *ExpenseStore {
	return &ExpenseStore{s: s}
}

func (r *ExpenseStore) Create(expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return err
	}
	list = append(list, expense)
	return save(r.s, fileExpenses, list)
}

func (r *ExpenseStore) GetByID(id string) (*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *ExpenseStore) Update(expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return err
	}
	for i, e := range list {
		if e.ID == expense.ID {
			list[i] = expense
			return save(r.s, fileExpenses, list)
		}
	}
	return domain.ErrNotFound
}

func (r *ExpenseStore) List() ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *ExpenseStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return err
	}
	for i, e := range list {
		if e.ID == id {
			list = append(list[:i], list[i+1:]...)
			return save(r.s, fileExpenses, list)
		}
	}
	return domain.ErrNotFound
}
