package cart

import "github.com/imsanjayr/ShopVerse/internal/product"

// Item is a stored cart entry: a product reference plus a quantity.
// Product details are looked up at read time, never stored.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// EnrichedItem is an Item joined with the current catalog record.
// Product is nil when the referenced product no longer exists; callers
// computing totals must skip such entries.
type EnrichedItem struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *product.Product `json:"product"`
}
