package cart

type CartItem struct {
	ID          string
	ProductID   string
	Name        string
	Description string
	ImageURL    string
	Quantity    int
	Price       float64
}

type Cart struct {
	ID           string
	Items        []CartItem
	Subtotal     float64
	Discount     float64
	Total        float64
	DiscountCode string
	CreatedAt    string
	UpdatedAt    string
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
