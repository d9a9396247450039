package category

import "github.com/imsanjayr/ShopVerse/internal/product"

// Service derives the category list from the catalog; categories are
// plain strings on products, not a collection of their own.
type Service struct {
	products product.Repository
}

func NewService(products product.Repository) *Service {
	return &Service{products: products}
}

// List returns the distinct categories in first-seen catalog order.
func (s *Service) List() ([]string, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}
