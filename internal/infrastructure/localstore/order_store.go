package localstore

import (
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderStore)(nil)

// OrderStore implementación del puerto OrderRepository sobre archivos.
type OrderStore struct {
	s *Store
}

func NewOrderStore(s *Store) *OrderStore {
	return &OrderStore{s: s}
}

func (r *OrderStore) Create(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Order](r.s, fileOrders)
	if err != nil {
		return err
	}
	list = append(list, order)
	return save(r.s, fileOrders, list)
}

func (r *OrderStore) GetByID(id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Order](r.s, fileOrders)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *OrderStore) Update(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Order](r.s, fileOrders)
	if err != nil {
		return err
	}
	for i, o := range list {
		if o.ID == order.ID {
			list[i] = order
			return save(r.s, fileOrders, list)
		}
	}
	return domain.ErrNotFound
}

func (r *OrderStore) List() ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Order](r.s, fileOrders)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}
