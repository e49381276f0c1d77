package localstore

import (
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore implementación del puerto ProductRepository sobre archivos.
type ProductStore struct {
	s *Store
}

func NewProductStore(s *Store) *ProductStore {
	return &ProductStore{s: s}
}

func (r *ProductStore) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return err
	}
	for _, p := range list {
		if p.ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	list = append(list, product)
	return save(r.s, fileProducts, list)
}

func (r *ProductStore) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *ProductStore) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return err
	}
	for i, p := range list {
		if p.ID == product.ID {
			list[i] = product
			return save(r.s, fileProducts, list)
		}
	}
	return domain.ErrNotFound
}

func (r *ProductStore) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *ProductStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return err
	}
	for i, p := range list {
		if p.ID == id {
			list = append(list[:i], list[i+1:]...)
			return save(r.s, fileProducts, list)
		}
	}
	return domain.ErrNotFound
}
