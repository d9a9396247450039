package cart

import (
	"errors"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

const collection = "carts"

// Repository reads and writes per-user carts. The backing collection
// is a single mapping of userID to items, rewritten on every mutation.
type Repository interface {
	// Get returns a user's items and whether a cart exists at all.
	// An absent cart is an empty cart, not an error.
	Get(userID string) ([]Item, bool, error)
	Put(userID string, items []Item) error
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) Get(userID string) ([]Item, bool, error) {
	var carts map[string][]Item
	if err := r.store.Load(collection, &carts); err != nil {
		return nil, false, err
	}
	items, ok := carts[userID]
	return items, ok, nil
}

func (r *StoreRepository) Put(userID string, items []Item) error {
	var carts map[string][]Item
	if err := r.store.Load(collection, &carts); err != nil {
		return err
	}
	if carts == nil {
		carts = map[string][]Item{}
	}
	carts[userID] = items
	return r.store.Save(collection, carts)
}
