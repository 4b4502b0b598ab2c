package cart

import (
	"shopfront/internal/api"
)

// cartItemRow is the backend's snake_case wire shape. Prices arrive as
// numeric strings on some revisions of the cart endpoint.
type cartItemRow struct {
	ID          api.ID     `json:"id"`
	ProductID   api.ID     `json:"product_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	Quantity    int        `json:"quantity"`
	Price       api.Amount `json:"price"`
}

type cartRow struct {
	ID           api.ID         `json:"id"`
	Items        []*cartItemRow `json:"items"`
	Discount     *api.Amount    `json:"discount"`
	Total        *api.Amount    `json:"total"`
	DiscountCode *string        `json:"discount_code"`
	CreatedAt    *string        `json:"created_at"`
	UpdatedAt    *string        `json:"updated_at"`
}

func mapCartItem(row *cartItemRow) CartItem {
	item := CartItem{
		ID:        row.ID.String(),
		ProductID: row.ProductID.String(),
		Name:      row.Name,
		Quantity:  row.Quantity,
		Price:     row.Price.Float64(),
	}
	if row.Description != nil {
		item.Description = *row.Description
	}
	if row.ImageURL != nil {
		item.ImageURL = *row.ImageURL
	}
	return item
}

// mapCart reshapes the wire cart. The subtotal is always recomputed from
// line items; the backend's copy is not trusted. A missing total defaults
// to subtotal minus discount.
func mapCart(row *cartRow) *Cart {
	if row == nil {
		return nil
	}

	items := make([]CartItem, 0, len(row.Items))
	var subtotal float64
	for _, r := range row.Items {
		if r == nil {
			continue
		}
		item := mapCartItem(r)
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	c := &Cart{
		ID:       row.ID.String(),
		Items:    items,
		Subtotal: subtotal,
	}
	if row.Discount != nil {
		c.Discount = row.Discount.Float64()
	}
	if row.Total != nil {
		c.Total = row.Total.Float64()
	} else {
		c.Total = subtotal - c.Discount
	}
	if row.DiscountCode != nil {
		c.DiscountCode = *row.DiscountCode
	}
	if row.CreatedAt != nil {
		c.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		c.UpdatedAt = *row.UpdatedAt
	}
	return c
}
