package localstore

import (
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryStore)(nil)

// CategoryStore implementación del puerto CategoryRepository sobre archivos.
// Ambas colecciones (catálogo y gastos) comparten archivo; Kind las separa.
type CategoryStore struct {
	s *Store
}

func NewCategoryStore(s *Store) *CategoryStore {
	return &CategoryStore{s: s}
}

func (r *CategoryStore) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.Kind == category.Kind && c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	list = append(list, category)
	return save(r.s, fileCategories, list)
}

func (r *CategoryStore) GetByID(id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CategoryStore) GetByName(kind entity.CategoryKind, name string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.Kind == kind && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CategoryStore) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.Kind == category.Kind && c.Name == category.Name && c.ID != category.ID {
			return domain.ErrDuplicate
		}
	}
	for i, c := range list {
		if c.ID == category.ID {
			list[i] = category
			return save(r.s, fileCategories, list)
		}
	}
	return domain.ErrNotFound
}

func (r *CategoryStore) List(kind entity.CategoryKind) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return nil, err
	}
	var out []*entity.Category
	for _, c := range list {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete elimina una categoría. domain.ErrInUse si productos o gastos la referencian.
func (r *CategoryStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	products, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.CategoryID == id {
			return domain.ErrInUse
		}
	}
	expenses, err := load[*entity.Expense](r.s, fileExpenses)
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if e.CategoryID == id {
			return domain.ErrInUse
		}
	}

	list, err := load[*entity.Category](r.s, fileCategories)
	if err != nil {
		return err
	}
	for i, c := range list {
		if c.ID == id {
			list = append(list[:i], list[i+1:]...)
			return save(r.s, fileCategories, list)
		}
	}
	return domain.ErrNotFound
}
