package user

import (
	"errors"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

var ErrNotFound = errors.New("user not found")

const collection = "users"

type Repository interface {
	List() ([]User, error)
	GetByID(id string) (User, error)
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	Count() (int, error)
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List() ([]User, error) {
	var users []User
	if err := r.store.Load(collection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *StoreRepository) GetByID(id string) (User, error) {
	users, err := r.List()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *StoreRepository) GetByEmail(email string) (User, error) {
	users, err := r.List()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *StoreRepository) Create(u User) (User, error) {
	users, err := r.List()
	if err != nil {
		return User{}, err
	}
	users = append(users, u)
	if err := r.store.Save(collection, users); err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *StoreRepository) Count() (int, error) {
	users, err := r.List()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
