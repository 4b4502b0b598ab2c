package admin

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"shopfront/internal/api"
	"shopfront/internal/order"
	"shopfront/internal/session"
)

var (
	ErrNotCSV        = errors.New("file must be a .csv")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidRole   = errors.New("invalid user role")
)

// ProductFilter narrows the admin catalog listing. Empty fields are omitted
// from the query entirely.
type ProductFilter struct {
	Category string
	Search   string
}

func (f ProductFilter) query() string {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return encode(params)
}

type OrderFilter struct {
	Status order.OrderStatus
	Page   int
}

func (f OrderFilter) query() string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return encode(params)
}

type UserFilter struct {
	Role   session.Role
	Search string
}

func (f UserFilter) query() string {
	params := url.Values{}
	if f.Role != "" {
		params.Set("role", string(f.Role))
	}
	if f.Search != "" {
		params.Set("q", f.Search)
	}
	return encode(params)
}

func encode(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

type Service interface {
	DashboardStats(ctx context.Context) (*Stats, error)

	Products(ctx context.Context, filter ProductFilter) ([]*Product, error)
	Product(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ToggleProduct(ctx context.Context, id string) (*Product, error)

	CreateVariant(ctx context.Context, productID string, input VariantInput) (*ProductVariant, error)
	UpdateVariant(ctx context.Context, productID, variantID string, input VariantInput) (*ProductVariant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) error

	UploadProductsCSV(ctx context.Context, fileName string, file io.Reader) (*BulkUploadResult, error)
	DownloadCSVTemplate(ctx context.Context) ([]byte, error)

	Orders(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
	Order(ctx context.Context, id string) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status order.OrderStatus) (*order.Order, error)

	Users(ctx context.Context, filter UserFilter) ([]*User, error)
	UpdateUserRole(ctx context.Context, id string, role session.Role) (*User, error)
	ToggleUser(ctx context.Context, id string) (*User, error)

	Discounts(ctx context.Context) ([]*Discount, error)
	CreateDiscount(ctx context.Context, form DiscountForm) (*Discount, error)
	UpdateDiscount(ctx context.Context, id string, form DiscountForm) (*Discount, error)
	DeleteDiscount(ctx context.Context, id string) error
	ToggleDiscount(ctx context.Context, id string) (*Discount, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) DashboardStats(ctx context.Context) (*Stats, error) {
	var row statsRow
	if err := s.client.Get(ctx, "/api/admin/dashboard/stats", &row); err != nil {
		return nil, err
	}
	return mapStats(&row), nil
}

func (s *service) Products(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	var products []*Product
	if err := s.client.Get(ctx, "/api/admin/products"+filter.query(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) Product(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.Get(ctx, "/api/admin/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var p Product
	if err := s.client.Post(ctx, "/api/products", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error) {
	var p Product
	if err := s.client.Put(ctx, "/api/products/"+id, input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/products/"+id, nil)
}

func (s *service) ToggleProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.Patch(ctx, "/api/products/"+id+"/toggle", struct{}{}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) CreateVariant(ctx context.Context, productID string, input VariantInput) (*ProductVariant, error) {
	var v ProductVariant
	if err := s.client.Post(ctx, "/api/products/"+productID+"/variants", input, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) UpdateVariant(ctx context.Context, productID, variantID string, input VariantInput) (*ProductVariant, error) {
	var v ProductVariant
	if err := s.client.Put(ctx, "/api/products/"+productID+"/variants/"+variantID, input, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) DeleteVariant(ctx context.Context, productID, variantID string) error {
	return s.client.Delete(ctx, "/api/products/"+productID+"/variants/"+variantID, nil)
}

// UploadProductsCSV imports a catalog CSV. The extension is checked before
// anything is sent so an obviously wrong file never reaches the backend.
func (s *service) UploadProductsCSV(ctx context.Context, fileName string, file io.Reader) (*BulkUploadResult, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return nil, ErrNotCSV
	}

	var result BulkUploadResult
	if err := s.client.PostForm(ctx, "/api/products/bulk-upload", nil, "file", fileName, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) DownloadCSVTemplate(ctx context.Context) ([]byte, error) {
	return s.client.GetBlob(ctx, "/api/products/csv-template")
}

func (s *service) Orders(ctx context.Context, filter OrderFilter) ([]*order.Order, error) {
	var rows []*order.OrderRow
	if err := s.client.Get(ctx, "/api/admin/orders"+filter.query(), &rows); err != nil {
		return nil, err
	}
	return order.MapOrders(rows), nil
}

func (s *service) Order(ctx context.Context, id string) (*order.Order, error) {
	var row order.OrderRow
	if err := s.client.Get(ctx, "/api/admin/orders/"+id, &row); err != nil {
		return nil, err
	}
	return order.MapOrder(&row), nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, id string, status order.OrderStatus) (*order.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	body := map[string]string{"status": string(status)}
	var row order.OrderRow
	if err := s.client.Put(ctx, "/api/orders/"+id+"/status", body, &row); err != nil {
		return nil, err
	}
	return order.MapOrder(&row), nil
}

func (s *service) Users(ctx context.Context, filter UserFilter) ([]*User, error) {
	var users []*User
	if err := s.client.Get(ctx, "/api/admin/users"+filter.query(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *service) UpdateUserRole(ctx context.Context, id string, role session.Role) (*User, error) {
	if role != session.RoleCustomer && role != session.RoleAdmin {
		return nil, ErrInvalidRole
	}

	body := map[string]string{"role": string(role)}
	var u User
	if err := s.client.Put(ctx, "/api/admin/users/"+id+"/role", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) ToggleUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := s.client.Patch(ctx, "/api/admin/users/"+id+"/toggle", struct{}{}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) Discounts(ctx context.Context) ([]*Discount, error) {
	var discounts []*Discount
	if err := s.client.Get(ctx, "/api/discounts", &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (s *service) CreateDiscount(ctx context.Context, form DiscountForm) (*Discount, error) {
	payload, err := form.Payload()
	if err != nil {
		return nil, err
	}

	var d Discount
	if err := s.client.Post(ctx, "/api/discounts", payload, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *service) UpdateDiscount(ctx context.Context, id string, form DiscountForm) (*Discount, error) {
	payload, err := form.Payload()
	if err != nil {
		return nil, err
	}

	var d Discount
	if err := s.client.Put(ctx, "/api/discounts/"+id, payload, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *service) DeleteDiscount(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/discounts/"+id, nil)
}

func (s *service) ToggleDiscount(ctx context.Context, id string) (*Discount, error) {
	var d Discount
	if err := s.client.Patch(ctx, "/api/discounts/"+id+"/toggle", struct{}{}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
