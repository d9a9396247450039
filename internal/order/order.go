package order

// Item is a point-in-time copy of a cart entry: product name and price
// are captured at checkout so later catalog edits never alter history.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
}

// Order is an immutable purchase snapshot. Only Status changes after
// creation, and only through the admin endpoint.
type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Items        []Item       `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	Tax          float64      `json:"tax"`
	Shipping     float64      `json:"shipping"`
	Total        float64      `json:"total"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Status       Status       `json:"status"`
	CreatedAt    string       `json:"createdAt"`
}
