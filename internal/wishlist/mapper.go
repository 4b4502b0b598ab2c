package wishlist

import (
	"shopfront/internal/api"
)

type wishlistItemRow struct {
	ID            api.ID     `json:"id"`
	ProductID     api.ID     `json:"product_id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Price         api.Amount `json:"price"`
	ImageURL      *string    `json:"image_url"`
	StockQuantity *int       `json:"stock_quantity"`
	CreatedAt     *string    `json:"created_at"`
}

type wishlistRow struct {
	ID         api.ID             `json:"id"`
	Items      []*wishlistItemRow `json:"items"`
	TotalItems *int               `json:"totalItems"`
}

// mapWishlist reshapes the wire wishlist; a missing totalItems is derived
// from the item count.
func mapWishlist(row *wishlistRow) *Wishlist {
	if row == nil {
		return nil
	}

	items := make([]WishlistItem, 0, len(row.Items))
	for _, r := range row.Items {
		if r == nil {
			continue
		}
		item := WishlistItem{
			ID:        r.ID.String(),
			ProductID: r.ProductID.String(),
			Name:      r.Name,
			Price:     r.Price.Float64(),
		}
		if r.Description != nil {
			item.Description = *r.Description
		}
		if r.ImageURL != nil {
			item.ImageURL = *r.ImageURL
		}
		if r.StockQuantity != nil {
			item.StockQuantity = *r.StockQuantity
		}
		if r.CreatedAt != nil {
			item.CreatedAt = *r.CreatedAt
		}
		items = append(items, item)
	}

	w := &Wishlist{
		ID:         row.ID.String(),
		Items:      items,
		TotalItems: len(items),
	}
	if row.TotalItems != nil {
		w.TotalItems = *row.TotalItems
	}
	return w
}
