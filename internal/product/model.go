package product

import (
	"shopfront/internal/api"
)

type Product struct {
	ID            api.ID     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         api.Amount `json:"price"`
	DiscountPrice api.Amount `json:"discountPrice,omitempty"`
	Image         string     `json:"image,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Category      string     `json:"category"`
	Stock         int        `json:"stock"`
	Rating        float64    `json:"rating,omitempty"`
	Reviews       int        `json:"reviews,omitempty"`
	SKU           string     `json:"sku,omitempty"`
	IsActive      bool       `json:"isActive,omitempty"`
}

func (p *Product) InStock() bool {
	return p != nil && p.Stock > 0
}

// Filter narrows a catalog listing. Zero values mean "no filter".
type Filter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}
