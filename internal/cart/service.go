package cart

import (
	"github.com/imsanjayr/ShopVerse/internal/product"
)

// Service owns the per-user cart lifecycle. Every mutation persists
// the whole cart collection.
type Service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the user's cart enriched with current catalog data.
// Prices can drift between add and view; enrichment always reflects
// the catalog as of this read.
func (s *Service) Get(userID string) ([]EnrichedItem, error) {
	items, _, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.products.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	enriched := make([]EnrichedItem, 0, len(items))
	for _, it := range items {
		e := EnrichedItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := byID[it.ProductID]; ok {
			e.Product = &p
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

// Items returns the raw entries without enrichment. Order placement
// uses it to materialize a snapshot.
func (s *Service) Items(userID string) ([]Item, error) {
	items, _, err := s.repo.Get(userID)
	return items, err
}

// Add merges qty into an existing entry for the product or appends a
// new one. Adding twice doubles; it never replaces.
func (s *Service) Add(userID, productID string, qty int) error {
	if _, err := s.products.GetByID(productID); err != nil {
		return err
	}

	items, _, err := s.repo.Get(userID)
	if err != nil {
		return err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{ProductID: productID, Quantity: qty})
	}
	return s.repo.Put(userID, items)
}

// SetQuantity replaces an entry's quantity. A quantity below 1 is
// equivalent to Remove.
func (s *Service) SetQuantity(userID, productID string, qty int) error {
	if qty < 1 {
		return s.Remove(userID, productID)
	}

	items, ok, err := s.repo.Get(userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartNotFound
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			return s.repo.Put(userID, items)
		}
	}
	return ErrItemNotFound
}

// Remove drops the entry for productID. A missing cart is an error; a
// missing item in an existing cart is a silent no-op.
func (s *Service) Remove(userID, productID string) error {
	items, ok, err := s.repo.Get(userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartNotFound
	}

	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return s.repo.Put(userID, kept)
}

// Clear empties the user's cart after a successful order.
func (s *Service) Clear(userID string) error {
	return s.repo.Put(userID, []Item{})
}
