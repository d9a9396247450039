package order

import (
	"errors"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

var ErrNotFound = errors.New("order not found")

const collection = "orders"

type Repository interface {
	List() ([]Order, error)
	GetByID(id string) (Order, error)
	Append(ord Order) error
	Update(id string, ord Order) (Order, error)
	Count() (int, error)
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List() ([]Order, error) {
	var orders []Order
	if err := r.store.Load(collection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *StoreRepository) GetByID(id string) (Order, error) {
	orders, err := r.List()
	if err != nil {
		return Order{}, err
	}
	for _, ord := range orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *StoreRepository) Append(ord Order) error {
	orders, err := r.List()
	if err != nil {
		return err
	}
	orders = append(orders, ord)
	return r.store.Save(collection, orders)
}

func (r *StoreRepository) Update(id string, ord Order) (Order, error) {
	orders, err := r.List()
	if err != nil {
		return Order{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			ord.ID = id
			orders[i] = ord
			if err := r.store.Save(collection, orders); err != nil {
				return Order{}, err
			}
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *StoreRepository) Count() (int, error) {
	orders, err := r.List()
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}
