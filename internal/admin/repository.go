package admin

import (
	"errors"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

var ErrNotFound = errors.New("admin not found")

const collection = "admins"

type Repository interface {
	GetByUsername(username string) (Admin, error)
	// ReplaceAll overwrites the whole collection; used by setup-admin.
	ReplaceAll(admins []Admin) error
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) GetByUsername(username string) (Admin, error) {
	var admins []Admin
	if err := r.store.Load(collection, &admins); err != nil {
		return Admin{}, err
	}
	for _, a := range admins {
		if a.Username == username {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (r *StoreRepository) ReplaceAll(admins []Admin) error {
	return r.store.Save(collection, admins)
}
