package product

import (
	"errors"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

var ErrNotFound = errors.New("product not found")

const collection = "products"

type Repository interface {
	List() ([]Product, error)
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	Replace(id string, p Product) (Product, error)
	Delete(id string) error
	Count() (int, error)
}

// StoreRepository persists products as a single collection snapshot:
// every mutation reads the whole collection and writes it back.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List() ([]Product, error) {
	var products []Product
	if err := r.store.Load(collection, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *StoreRepository) GetByID(id string) (Product, error) {
	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *StoreRepository) Create(p Product) (Product, error) {
	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	products = append(products, p)
	if err := r.store.Save(collection, products); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *StoreRepository) Replace(id string, p Product) (Product, error) {
	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	for i := range products {
		if products[i].ID == id {
			p.ID = id
			products[i] = p
			if err := r.store.Save(collection, products); err != nil {
				return Product{}, err
			}
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *StoreRepository) Delete(id string) error {
	products, err := r.List()
	if err != nil {
		return err
	}
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrNotFound
	}
	return r.store.Save(collection, kept)
}

func (r *StoreRepository) Count() (int, error) {
	products, err := r.List()
	if err != nil {
		return 0, err
	}
	return len(products), nil
}
