package order

import (
	"math"
	"testing"

	"github.com/imsanjayr/ShopVerse/internal/cart"
	"github.com/imsanjayr/ShopVerse/internal/product"
	"github.com/imsanjayr/ShopVerse/internal/store"
)

type fixture struct {
	orders   *Service
	carts    *cart.Service
	products *product.StoreRepository
}

func newFixture(t *testing.T, products []product.Product) fixture {
	t.Helper()
	s := store.NewMemStore()
	if err := s.Save("products", products); err != nil {
		t.Fatalf("seed products: %v", err)
	}
	productRepo := product.NewStoreRepository(s)
	cartService := cart.NewService(cart.NewStoreRepository(s), productRepo)
	return fixture{
		orders:   NewService(NewStoreRepository(s), cartService, productRepo),
		carts:    cartService,
		products: productRepo,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

var shipTo = ShippingInfo{Name: "Ada", Address: "1 Main St", Phone: "555-0100"}

func TestPlace_TotalsScenario(t *testing.T) {
	f := newFixture(t, []product.Product{
		{ID: "p1", Name: "Mug", Price: 10},
		{ID: "p2", Name: "Coaster", Price: 5},
	})
	if err := f.carts.Add("u1", "p1", 2); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if err := f.carts.Add("u1", "p2", 1); err != nil {
		t.Fatalf("add p2: %v", err)
	}

	ord, err := f.orders.Place("u1", shipTo)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if !approx(ord.Subtotal, 25.00) {
		t.Fatalf("expected subtotal 25.00, got %v", ord.Subtotal)
	}
	if !approx(ord.Tax, 2.50) {
		t.Fatalf("expected tax 2.50, got %v", ord.Tax)
	}
	if !approx(ord.Shipping, 10.00) {
		t.Fatalf("expected shipping 10.00, got %v", ord.Shipping)
	}
	if !approx(ord.Total, 37.50) {
		t.Fatalf("expected total 37.50, got %v", ord.Total)
	}
	if !approx(ord.Total, ord.Subtotal+ord.Subtotal*0.10+10.00) {
		t.Fatalf("total formula violated: %+v", ord)
	}
	if ord.Status != StatusPending {
		t.Fatalf("expected status pending, got %s", ord.Status)
	}
	if ord.ID == "" || ord.CreatedAt == "" {
		t.Fatalf("expected id and createdAt assigned, got %+v", ord)
	}
}

func TestPlace_EmptiesCart(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1", Name: "Mug", Price: 10}})
	if err := f.carts.Add("u1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := f.orders.Place("u1", shipTo); err != nil {
		t.Fatalf("place: %v", err)
	}

	items, err := f.carts.Get("u1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after order, got %+v", items)
	}
}

func TestPlace_EmptyCart(t *testing.T) {
	f := newFixture(t, nil)
	if _, err := f.orders.Place("u1", shipTo); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlace_MissingShippingFields(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1"}})
	if err := f.carts.Add("u1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := f.orders.Place("u1", ShippingInfo{Name: "Ada", Phone: "555"}); err != ErrMissingShippingInfo {
		t.Fatalf("expected ErrMissingShippingInfo, got %v", err)
	}
}

func TestPlace_DeletedProductBecomesUnknown(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1", Name: "Mug", Price: 10}})
	if err := f.carts.Add("u1", "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.products.Delete("p1"); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	ord, err := f.orders.Place("u1", shipTo)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if ord.Items[0].ProductName != "Unknown" || ord.Items[0].Price != 0 {
		t.Fatalf("expected Unknown/0 placeholder, got %+v", ord.Items[0])
	}
	if !approx(ord.Total, 10.00) {
		t.Fatalf("expected total of shipping only, got %v", ord.Total)
	}
}

func TestOrderSnapshotSurvivesProductEdits(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1", Name: "Mug", Price: 10}})
	if err := f.carts.Add("u1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	placed, err := f.orders.Place("u1", shipTo)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// deleting the product must not alter the placed order
	if err := f.products.Delete("p1"); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	orders, err := f.orders.ListByUser("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	got := orders[0]
	if got.Items[0].ProductName != "Mug" || got.Items[0].Price != 10 {
		t.Fatalf("snapshot lost copied name/price: %+v", got.Items[0])
	}
	if got.ID != placed.ID {
		t.Fatalf("expected same order back, got %+v", got)
	}
}

func TestListByUser_OwnOrdersOnly(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1", Name: "Mug", Price: 10}})
	for _, u := range []string{"u1", "u2", "u1"} {
		if err := f.carts.Add(u, "p1", 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := f.orders.Place(u, shipTo); err != nil {
			t.Fatalf("place for %s: %v", u, err)
		}
	}

	own, err := f.orders.ListByUser("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("expected 2 orders for u1, got %d", len(own))
	}
}

func TestSetStatus_Transitions(t *testing.T) {
	f := newFixture(t, []product.Product{{ID: "p1", Name: "Mug", Price: 10}})
	if err := f.carts.Add("u1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	ord, err := f.orders.Place("u1", shipTo)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if _, err := f.orders.SetStatus(ord.ID, "totally-bogus"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := f.orders.SetStatus(ord.ID, "delivered"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition for pending->delivered, got %v", err)
	}
	if _, err := f.orders.SetStatus("missing", "confirmed"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, next := range []string{"confirmed", "shipped", "delivered"} {
		updated, err := f.orders.SetStatus(ord.ID, next)
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if string(updated.Status) != next {
			t.Fatalf("expected status %s, got %s", next, updated.Status)
		}
	}

	// delivered is terminal
	if _, err := f.orders.SetStatus(ord.ID, "cancelled"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from delivered, got %v", err)
	}
}
