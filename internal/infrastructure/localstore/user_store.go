package localstore

import (
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore implementación del puerto UserRepository sobre archivos.
type UserStore struct {
	s *Store
}

func NewUserStore(s *Store) *UserStore {
	return &UserStore{s: s}
}

func (r *UserStore) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.User](r.s, fileUsers)
	if err != nil {
		return err
	}
	for _, u := range list {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	list = append(list, user)
	return save(r.s, fileUsers, list)
}

func (r *UserStore) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.User](r.s, fileUsers)
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

func (r *UserStore) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.User](r.s, fileUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserStore) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list, err := load[*entity.User](r.s, fileUsers)
	if err != nil {
		return err
	}
	for i, u := range list {
		if u.ID == user.ID {
			list[i] = user
			return save(r.s, fileUsers, list)
		}
	}
	return domain.ErrNotFound
}
