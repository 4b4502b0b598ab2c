package admin

import (
	"shopfront/internal/api"
	"shopfront/internal/order"
	"shopfront/internal/session"
)

// Stats is the dashboard summary for the admin overview.
type Stats struct {
	TotalRevenue  float64
	TotalOrders   int
	TotalUsers    int
	TotalProducts int
	RecentOrders  []*order.Order
	TopProducts   []TopProduct
}

type TopProduct struct {
	ProductID string
	Name      string
	TotalSold int
	Revenue   float64
	ImageURL  string
}

type statsRow struct {
	TotalRevenue  api.Amount        `json:"total_revenue"`
	TotalOrders   int               `json:"total_orders"`
	TotalUsers    int               `json:"total_users"`
	TotalProducts int               `json:"total_products"`
	RecentOrders  []*order.OrderRow `json:"recent_orders"`
	TopProducts   []*topProductRow  `json:"top_products"`
}

type topProductRow struct {
	ProductID api.ID     `json:"product_id"`
	Name      string     `json:"name"`
	TotalSold int        `json:"total_sold"`
	Revenue   api.Amount `json:"revenue"`
	ImageURL  string     `json:"image_url"`
}

func mapStats(row *statsRow) *Stats {
	if row == nil {
		return &Stats{}
	}

	top := make([]TopProduct, 0, len(row.TopProducts))
	for _, r := range row.TopProducts {
		if r == nil {
			continue
		}
		top = append(top, TopProduct{
			ProductID: r.ProductID.String(),
			Name:      r.Name,
			TotalSold: r.TotalSold,
			Revenue:   r.Revenue.Float64(),
			ImageURL:  r.ImageURL,
		})
	}

	return &Stats{
		TotalRevenue:  row.TotalRevenue.Float64(),
		TotalOrders:   row.TotalOrders,
		TotalUsers:    row.TotalUsers,
		TotalProducts: row.TotalProducts,
		RecentOrders:  order.MapOrders(row.RecentOrders),
		TopProducts:   top,
	}
}

// Product is the catalog entry as managed by admins. It carries the raw
// backend shape, including fields hidden from the storefront view.
type Product struct {
	ID            api.ID           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         api.Amount       `json:"price"`
	Category      string           `json:"category"`
	SubCategory   string           `json:"sub_category"`
	StockQuantity int              `json:"stock_quantity"`
	ImageURL      string           `json:"image_url"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	Variants      []ProductVariant `json:"variants"`
}

type ProductVariant struct {
	ID            api.ID            `json:"id"`
	ProductID     api.ID            `json:"product_id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Price         api.Amount        `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	Attributes    map[string]string `json:"attributes"`
}

// ProductInput is the create/update payload for a catalog entry.
type ProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	SubCategory   string  `json:"sub_category,omitempty"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsActive      bool    `json:"is_active"`
}

type VariantInput struct {
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// User is the account record as seen by admins.
type User struct {
	ID        api.ID       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Phone     string       `json:"phone"`
	Role      session.Role `json:"role"`
	IsActive  bool         `json:"is_active"`
	CreatedAt string       `json:"created_at"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Discount struct {
	ID                api.ID       `json:"id"`
	Code              string       `json:"code"`
	Description       string       `json:"description"`
	DiscountType      DiscountType `json:"discount_type"`
	DiscountValue     api.Amount   `json:"discount_value"`
	MinOrderAmount    api.Amount   `json:"min_order_amount"`
	MaxDiscountAmount *api.Amount  `json:"max_discount_amount"`
	UsageLimit        *int         `json:"usage_limit"`
	UsedCount         int          `json:"used_count"`
	ValidFrom         string       `json:"valid_from"`
	ValidUntil        string       `json:"valid_until"`
	IsActive          bool         `json:"is_active"`
}

// BulkUploadResult summarizes a CSV catalog import.
type BulkUploadResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
