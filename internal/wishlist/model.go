package wishlist

type WishlistItem struct {
	ID            string
	ProductID     string
	Name          string
	Description   string
	Price         float64
	ImageURL      string
	StockQuantity int
	CreatedAt     string
}

type Wishlist struct {
	ID         string
	Items      []WishlistItem
	TotalItems int
}

// Contains reports whether productID is already saved.
func (w *Wishlist) Contains(productID string) bool {
	if w == nil {
		return false
	}
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
