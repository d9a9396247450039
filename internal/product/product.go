package product

import (
	"strconv"
	"strings"
)

// Product represents a catalog entry. JSON tags follow the field names
// used by the storefront clients.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// FlexFloat accepts both JSON numbers and numeric strings, so clients
// that send `"price": "12.50"` still produce a numeric field.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is the integer counterpart of FlexFloat. Fractional input is
// truncated.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(v)
	return nil
}
