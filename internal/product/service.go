package product

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("all fields are required")

// Filter narrows a catalog listing. Both fields combine with AND.
type Filter struct {
	Category string
	Search   string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog in stored order. Category is matched by
// exact equality; search is a case-insensitive substring match against
// name or description.
func (s *Service) List(f Filter) ([]Product, error) {
	products, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(f.Search)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Get(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// CreateRequest carries a new product. Price and stock tolerate
// numeric-string input.
type CreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *FlexFloat `json:"price"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Stock       *FlexInt   `json:"stock"`
}

func (r CreateRequest) validate() error {
	if r.Name == "" || r.Description == "" || r.Image == "" || r.Category == "" ||
		r.Price == nil || r.Stock == nil {
		return ErrMissingFields
	}
	return nil
}

func (s *Service) Create(req CreateRequest) (Product, error) {
	if err := req.validate(); err != nil {
		return Product{}, err
	}
	p := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       float64(*req.Price),
		Image:       req.Image,
		Category:    req.Category,
		Stock:       int(*req.Stock),
	}
	return s.repo.Create(p)
}

// UpdateRequest is a partial patch: every field is a pointer so a
// supplied zero price or stock is distinguishable from an omitted one.
type UpdateRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *FlexFloat `json:"price"`
	Image       *string    `json:"image"`
	Category    *string    `json:"category"`
	Stock       *FlexInt   `json:"stock"`
}

func (s *Service) Update(id string, req UpdateRequest) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = float64(*req.Price)
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = int(*req.Stock)
	}
	return s.repo.Replace(id, p)
}

// Delete removes a product. Carts and orders referencing it are left
// untouched; cart enrichment degrades to a missing product.
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}
