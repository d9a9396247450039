package product

import (
	"encoding/json"
	"testing"

	"github.com/imsanjayr/ShopVerse/internal/store"
)

func seedRepo(t *testing.T, products []Product) *StoreRepository {
	t.Helper()
	s := store.NewMemStore()
	if err := s.Save(collection, products); err != nil {
		t.Fatalf("seed products: %v", err)
	}
	return NewStoreRepository(s)
}

func TestList_Filters(t *testing.T) {
	repo := seedRepo(t, []Product{
		{ID: "1", Name: "Espresso Maker", Description: "stovetop coffee", Category: "kitchen"},
		{ID: "2", Name: "Desk Lamp", Description: "warm light", Category: "office"},
		{ID: "3", Name: "Coffee Grinder", Description: "burr grinder", Category: "kitchen"},
	})
	svc := NewService(repo)

	kitchen, err := svc.List(Filter{Category: "kitchen"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(kitchen) != 2 {
		t.Fatalf("expected 2 kitchen products, got %d", len(kitchen))
	}

	// search matches name or description, case-insensitively
	coffee, err := svc.List(Filter{Search: "COFFEE"})
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	if len(coffee) != 2 {
		t.Fatalf("expected 2 coffee matches, got %d", len(coffee))
	}

	both, err := svc.List(Filter{Category: "kitchen", Search: "grinder"})
	if err != nil {
		t.Fatalf("list combined: %v", err)
	}
	if len(both) != 1 || both[0].ID != "3" {
		t.Fatalf("expected only the grinder, got %+v", both)
	}

	none, err := svc.List(Filter{Search: "zzz-no-such-term"})
	if err != nil {
		t.Fatalf("expected no error for empty result, got %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty sequence, got %+v", none)
	}
}

func TestCreate_CoercesNumericStrings(t *testing.T) {
	svc := NewService(seedRepo(t, nil))

	var req CreateRequest
	body := `{"name":"Mug","description":"ceramic","price":"12.50","image":"/img/mug.png","category":"kitchen","stock":"7"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}

	p, err := svc.Create(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Price != 12.50 {
		t.Fatalf("expected price 12.50, got %v", p.Price)
	}
	if p.Stock != 7 {
		t.Fatalf("expected stock 7, got %v", p.Stock)
	}
	if p.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewService(seedRepo(t, nil))

	price := FlexFloat(5)
	_, err := svc.Create(CreateRequest{Name: "Mug", Price: &price})
	if err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestUpdate_PartialPatchKeepsOmittedFields(t *testing.T) {
	repo := seedRepo(t, []Product{
		{ID: "1", Name: "Mug", Description: "ceramic", Price: 12.5, Image: "/img/mug.png", Category: "kitchen", Stock: 7},
	})
	svc := NewService(repo)

	// an explicit zero must be applied, not treated as omitted
	zeroPrice := FlexFloat(0)
	zeroStock := FlexInt(0)
	updated, err := svc.Update("1", UpdateRequest{Price: &zeroPrice, Stock: &zeroStock})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 0 || updated.Stock != 0 {
		t.Fatalf("expected zero price and stock applied, got %+v", updated)
	}
	if updated.Name != "Mug" || updated.Category != "kitchen" {
		t.Fatalf("expected omitted fields untouched, got %+v", updated)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(seedRepo(t, nil))
	name := "x"
	if _, err := svc.Update("missing", UpdateRequest{Name: &name}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := seedRepo(t, []Product{{ID: "1", Name: "Mug"}})
	svc := NewService(repo)

	if err := svc.Delete("1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete("1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	n, err := svc.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty catalog, got %d", n)
	}
}
