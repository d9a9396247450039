package order

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/imsanjayr/ShopVerse/internal/cart"
	"github.com/imsanjayr/ShopVerse/internal/product"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingShippingInfo = errors.New("all shipping fields are required")
)

const (
	taxRate      = 0.10
	flatShipping = 10.00
)

// Service materializes carts into orders and manages order state.
type Service struct {
	repo     Repository
	carts    *cart.Service
	products product.Repository
}

func NewService(repo Repository, carts *cart.Service, products product.Repository) *Service {
	return &Service{repo: repo, carts: carts, products: products}
}

// Place turns the user's cart into an immutable order snapshot:
// current product names and prices are copied into the items, totals
// follow the fixed 10% tax / flat 10.00 shipping formula, and the cart
// is emptied afterwards. The order append and the cart clear are two
// separate writes; a crash between them leaves the order placed with
// the cart intact.
func (s *Service) Place(userID string, info ShippingInfo) (Order, error) {
	if info.Name == "" || info.Address == "" || info.Phone == "" {
		return Order{}, ErrMissingShippingInfo
	}

	entries, err := s.carts.Items(userID)
	if err != nil {
		return Order{}, err
	}
	if len(entries) == 0 {
		return Order{}, ErrEmptyCart
	}

	catalog, err := s.products.List()
	if err != nil {
		return Order{}, err
	}
	byID := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var subtotal float64
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		// a product deleted since it was added resolves to a
		// zero-priced placeholder, not an error
		name, price := "Unknown", 0.0
		if p, ok := byID[e.ProductID]; ok {
			name, price = p.Name, p.Price
		}
		line := price * float64(e.Quantity)
		subtotal += line
		items = append(items, Item{
			ProductID:   e.ProductID,
			ProductName: name,
			Quantity:    e.Quantity,
			Price:       price,
			Subtotal:    round2(line),
		})
	}

	tax := subtotal * taxRate
	total := subtotal + tax + flatShipping

	ord := Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		Items:        items,
		Subtotal:     round2(subtotal),
		Tax:          round2(tax),
		Shipping:     flatShipping,
		Total:        round2(total),
		ShippingInfo: info,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Append(ord); err != nil {
		return Order{}, err
	}
	if err := s.carts.Clear(userID); err != nil {
		return Order{}, err
	}
	return ord, nil
}

// ListByUser returns the user's own orders in insertion order.
func (s *Service) ListByUser(userID string) ([]Order, error) {
	orders, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	own := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if ord.UserID == userID {
			own = append(own, ord)
		}
	}
	return own, nil
}

func (s *Service) ListAll() ([]Order, error) {
	return s.repo.List()
}

// SetStatus moves an order to a new state, validating both the value
// and the transition.
func (s *Service) SetStatus(id, raw string) (Order, error) {
	next, err := ParseStatus(raw)
	if err != nil {
		return Order{}, err
	}
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if !ord.Status.CanTransitionTo(next) {
		return Order{}, ErrInvalidTransition
	}
	ord.Status = next
	return s.repo.Update(id, ord)
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
