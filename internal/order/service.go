package order

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"shopfront/internal/api"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no items")
)

// ListOptions filters the order history. Zero values mean "no filter".
type ListOptions struct {
	Status OrderStatus
	Page   int
	Limit  int
}

func (o ListOptions) query() string {
	params := url.Values{}
	if o.Status != "" {
		params.Set("status", string(o.Status))
	}
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

type Service interface {
	GetOrders(ctx context.Context, opts ListOptions) ([]*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
	GetTracking(ctx context.Context, id string) (*Tracking, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetOrders(ctx context.Context, opts ListOptions) ([]*Order, error) {
	var rows []*OrderRow
	if err := s.client.Get(ctx, "/api/orders"+opts.query(), &rows); err != nil {
		return nil, err
	}
	return MapOrders(rows), nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	var row OrderRow
	if err := s.client.Get(ctx, "/api/orders/"+id, &row); err != nil {
		if api.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return MapOrder(&row), nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var row OrderRow
	if err := s.client.Post(ctx, "/api/orders", input, &row); err != nil {
		return nil, err
	}
	return MapOrder(&row), nil
}

func (s *service) Cancel(ctx context.Context, id string) (*Order, error) {
	var row OrderRow
	if err := s.client.Post(ctx, "/api/orders/"+id+"/cancel", nil, &row); err != nil {
		return nil, err
	}
	return MapOrder(&row), nil
}

func (s *service) GetTracking(ctx context.Context, id string) (*Tracking, error) {
	var tracking Tracking
	if err := s.client.Get(ctx, "/api/orders/"+id+"/tracking", &tracking); err != nil {
		return nil, err
	}
	tracking.OrderID = id
	return &tracking, nil
}
