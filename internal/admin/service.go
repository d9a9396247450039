package admin

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Counter reports a collection size. The user, product and order
// services all satisfy it.
type Counter interface {
	Count() (int, error)
}

type Service struct {
	repo     Repository
	users    Counter
	products Counter
	orders   Counter
}

func NewService(repo Repository, users, products, orders Counter) *Service {
	return &Service{repo: repo, users: users, products: products, orders: orders}
}

func (s *Service) Authenticate(username, password string) (Admin, error) {
	a, err := s.repo.GetByUsername(username)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Service) Stats() (Stats, error) {
	users, err := s.users.Count()
	if err != nil {
		return Stats{}, err
	}
	products, err := s.products.Count()
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orders.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{Users: users, Products: products, Orders: orders}, nil
}
