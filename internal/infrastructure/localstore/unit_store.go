package localstore

import (
	"sort"

	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitStore)(nil)

// UnitStore implementación del puerto UnitRepository sobre archivos.
type UnitStore struct {
	s *Store
}

func NewUnitStore(s *Store) *UnitStore {
	return &UnitStore{s: s}
}

func (r *UnitStore) Create(unit *entity.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Unit](r.s, fileUnits)
	if err != nil {
		return err
	}
	for _, u := range list {
		if u.Name == unit.Name {
			return domain.ErrDuplicate
		}
	}
	list = append(list, unit)
	return save(r.s, fileUnits, list)
}

func (r *UnitStore) GetByID(id string) (*entity.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Unit](r.s, fileUnits)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UnitStore) Update(unit *entity.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Unit](r.s, fileUnits)
	if err != nil {
		return err
	}
	for i, u := range list {
		if u.ID == unit.ID {
			list[i] = unit
			return save(r.s, fileUnits, list)
		}
	}
	return domain.ErrNotFound
}

func (r *UnitStore) List() ([]*entity.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.Unit](r.s, fileUnits)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Delete elimina una unidad. domain.ErrInUse si algún producto la usa.
func (r *UnitStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	products, err := load[*entity.Product](r.s, fileProducts)
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.UnitID == id {
			return domain.ErrInUse
		}
	}

	list, err := load[*entity.Unit](r.s, fileUnits)
	if err != nil {
		return err
	}
	for i, u := range list {
		if u.ID == id {
			list = append(list[:i], list[i+1:]...)
			return save(r.s, fileUnits, list)
		}
	}
	return domain.ErrNotFound
}
